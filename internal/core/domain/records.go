package domain

// FacultyRecord is one row of the faculty directory. Records are loaded once
// at process start and never mutated.
type FacultyRecord struct {
	Name       string `json:"name" yaml:"name"`
	Role       string `json:"role" yaml:"role"`
	Department string `json:"department,omitempty" yaml:"department,omitempty"`
	School     string `json:"school,omitempty" yaml:"school,omitempty"`
	Campus     string `json:"campus,omitempty" yaml:"campus,omitempty"`
	Email      string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone      string `json:"phone,omitempty" yaml:"phone,omitempty"`
	ProfileURL string `json:"profile_url,omitempty" yaml:"profile_url,omitempty"`
}

// ContactRecord is a university key contact. Role is free text and may carry
// titles like "Vice Chancellor" or "Director, Admission".
type ContactRecord struct {
	Name  string `json:"name" yaml:"name"`
	Role  string `json:"role" yaml:"role"`
	Phone string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

// CampusContact is a role/name/phone triple scoped to a campus. Phone may be
// a single number or a list in the source data.
type CampusContact struct {
	Role  string   `json:"role" yaml:"role"`
	Name  string   `json:"name" yaml:"name"`
	Phone []string `json:"phone,omitempty" yaml:"phone,omitempty"`
}

type CampusRecord struct {
	Name     string          `json:"name" yaml:"name"`
	Contacts []CampusContact `json:"contacts,omitempty" yaml:"contacts,omitempty"`
}

type ClubRecord struct {
	Name               string `json:"name" yaml:"name"`
	Campus             string `json:"campus,omitempty" yaml:"campus,omitempty"`
	Category           string `json:"category,omitempty" yaml:"category,omitempty"`
	FacultyCoordinator string `json:"faculty_coordinator,omitempty" yaml:"faculty_coordinator,omitempty"`
	Contact            string `json:"contact,omitempty" yaml:"contact,omitempty"`
	Email              string `json:"email,omitempty" yaml:"email,omitempty"`
}

type HostelRecord struct {
	Name     string `json:"name" yaml:"name"`
	Campus   string `json:"campus,omitempty" yaml:"campus,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Capacity int    `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Warden   string `json:"warden,omitempty" yaml:"warden,omitempty"`
	Contact  string `json:"contact,omitempty" yaml:"contact,omitempty"`
}
