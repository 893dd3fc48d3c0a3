package entity

import "time"

type PageType string

const (
	PageAbout   PageType = "about"
	PageContact PageType = "contact"
	PageTerms   PageType = "terms"
	PagePrivacy PageType = "privacy"
)

func (t PageType) Valid() bool {
	switch t {
	case PageAbout, PageContact, PageTerms, PagePrivacy:
		return true
	}
	return false
}

type Page struct {
	Type      PageType  `db:"type"`
	Detail    string    `db:"detail"`
	UpdatedAt time.Time `db:"updated_at"`
}
