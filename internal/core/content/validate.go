package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// MaxSections is the number of sections reachable with the number-key shortcuts.
const MaxSections = 9

// Validate checks the portfolio for structural problems. Every problem is reported,
// keyed by its path in the document.
func (p *Portfolio) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("name", p.Name, required),
		p.validateNotice(),
		p.validateSections(),
	)
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("is required")
	}
	return nil
}

func (p *Portfolio) validateNotice() error {
	if p.Notice == nil {
		return nil
	}
	return criterio.Run("notice.message", p.Notice.Message, required)
}

func (p *Portfolio) validateSections() error {
	var errs criterio.FieldErrorsBuilder

	switch {
	case len(p.Sections) == 0:
		errs = errs.Append("sections", errors.New("at least one section is required"))
	case len(p.Sections) > MaxSections:
		errs = errs.Append("sections", fmt.Errorf("at most %d sections are supported, got %d", MaxSections, len(p.Sections)))
	}

	seen := make(map[string]int, len(p.Sections))
	contact := -1
	for i, s := range p.Sections {
		field := fmt.Sprintf("sections[%d]", i)

		switch {
		case s.ID == "":
			errs = errs.Append(field+".id", errors.New("is required"))
		case strings.ContainsAny(s.ID, "/*?[]{} "):
			errs = errs.Append(field+".id", fmt.Errorf("%q must not contain spaces, slashes or glob characters", s.ID))
		default:
			if prev, ok := seen[s.ID]; ok {
				errs = errs.Append(field+".id", fmt.Errorf("duplicate id %q (also sections[%d])", s.ID, prev))
			} else {
				seen[s.ID] = i
			}
		}

		if err := required(s.Title); err != nil {
			errs = errs.Append(field+".title", err)
		}

		if !s.Kind.Valid() {
			errs = errs.Append(field+".kind", fmt.Errorf("unknown kind %q (available: %v)", s.Kind, Kinds))
			continue
		}

		if s.Kind == KindContact {
			if contact >= 0 {
				errs = errs.Append(field+".kind", fmt.Errorf("only one contact section is allowed (also sections[%d])", contact))
			}
			contact = i
		}

		errs = s.validateItems(field, errs)
	}

	return errs.ToError()
}

func (s Section) validateItems(field string, errs criterio.FieldErrorsBuilder) criterio.FieldErrorsBuilder {
	switch s.Kind {
	case KindCards:
		if len(s.Cards) == 0 {
			errs = errs.Append(field+".cards", errors.New("a cards section needs at least one card"))
		}
		ids := make(map[string]bool, len(s.Cards))
		for i, c := range s.Cards {
			cf := fmt.Sprintf("%s.cards[%d]", field, i)
			if err := required(c.Title); err != nil {
				errs = errs.Append(cf+".title", err)
			}
			if strings.ContainsAny(c.ID, "/*?[]{} ") {
				errs = errs.Append(cf+".id", fmt.Errorf("%q must not contain spaces, slashes or glob characters", c.ID))
			}
			path := s.CardPath(i)
			if ids[path] {
				errs = errs.Append(cf+".id", fmt.Errorf("duplicate card path %q", path))
			}
			ids[path] = true
		}
	case KindSkills:
		if len(s.Skills) == 0 {
			errs = errs.Append(field+".skills", errors.New("a skills section needs at least one skill"))
		}
		for i, sk := range s.Skills {
			sf := fmt.Sprintf("%s.skills[%d]", field, i)
			if err := required(sk.Name); err != nil {
				errs = errs.Append(sf+".name", err)
			}
			if sk.Level < 0 || sk.Level > 100 {
				errs = errs.Append(sf+".level", fmt.Errorf("must be between 0 and 100, got %d", sk.Level))
			}
		}
	case KindStats:
		if len(s.Stats) == 0 {
			errs = errs.Append(field+".stats", errors.New("a stats section needs at least one stat"))
		}
		for i, st := range s.Stats {
			sf := fmt.Sprintf("%s.stats[%d]", field, i)
			if err := required(st.Label); err != nil {
				errs = errs.Append(sf+".label", err)
			}
			if st.Count < 0 {
				errs = errs.Append(sf+".count", fmt.Errorf("must not be negative, got %d", st.Count))
			}
		}
	}
	return errs
}
