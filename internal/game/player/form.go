package player

import "fmt"

// Form is the player's current transformation.
type Form int

const (
	FormNone Form = iota
	FormBladeHands
	FormSpider
	FormStatue
	FormIceBeast
	FormDragon
	FormLich
	FormBat
	FormPig
)

var formNames = map[Form]string{
	FormNone:       "none",
	FormBladeHands: "blade_hands",
	FormSpider:     "spider",
	FormStatue:     "statue",
	FormIceBeast:   "ice_beast",
	FormDragon:     "dragon",
	FormLich:       "lich",
	FormBat:        "bat",
	FormPig:        "pig",
}

func (f Form) String() string {
	if n, ok := formNames[f]; ok {
		return n
	}
	return "unknown"
}

// ParseForm returns the Form named s.
func ParseForm(s string) (Form, error) {
	for f, n := range formNames {
		if n == s {
			return f, nil
		}
	}
	return FormNone, fmt.Errorf("unknown form %q", s)
}

// God identifies the player's deity. The empty God is no religion.
type God string

const (
	NoGod          God = ""
	Zin            God = "zin"
	TheShiningOne  God = "shining_one"
	Kikubaaqudgha  God = "kikubaaqudgha"
	Yredelemnul    God = "yredelemnul"
	Xom            God = "xom"
	Vehumet        God = "vehumet"
	Okawaru        God = "okawaru"
	Makhleb        God = "makhleb"
	SifMuna        God = "sif_muna"
	Trog           God = "trog"
	Nemelex        God = "nemelex_xobeh"
	Elyvilon       God = "elyvilon"
	Lugonu         God = "lugonu"
	Beogh          God = "beogh"
	Jiyva          God = "jiyva"
	Fedhas         God = "fedhas"
	Cheibriados    God = "cheibriados"
	Ashenzari      God = "ashenzari"
)

// IsGood reports whether g is one of the good gods, who abhor undeath.
func (g God) IsGood() bool {
	switch g {
	case Zin, TheShiningOne, Elyvilon:
		return true
	default:
		return false
	}
}
