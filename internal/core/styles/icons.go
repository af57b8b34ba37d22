package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconBrand   = "" // user
	IconMenu    = "" // bars
	IconClose   = "" // times
	IconSpinner = "" // spinner
	IconSearch  = "" // search
	IconMail    = "" // envelope
	IconBullet  = "•"
)

// Notification icons, one per severity. See SeverityIcon.
var (
	IconNotifyInfo    = "" // info-circle
	IconNotifySuccess = "" // check-circle
	IconNotifyWarning = "" // exclamation-triangle
	IconNotifyError   = "" // exclamation-circle
)
