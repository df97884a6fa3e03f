package kb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/centai/centai/internal/core/domain"
)

// phoneList decodes a phone field that the source data writes either as a
// single scalar or as a list.
type phoneList []string

func (p *phoneList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*p = phoneList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("phone must be a string or a list of strings")
	}
	*p = phoneList(many)
	return nil
}

func (p *phoneList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*p = phoneList{value.Value}
		return nil
	}
	var many []string
	if err := value.Decode(&many); err != nil {
		return fmt.Errorf("phone must be a scalar or a sequence")
	}
	*p = phoneList(many)
	return nil
}

// file-level schema: identical to the original data file, with the flexible
// phone shim for campus sub-contacts.
type campusContactFile struct {
	Role  string    `json:"role" yaml:"role"`
	Name  string    `json:"name" yaml:"name"`
	Phone phoneList `json:"phone,omitempty" yaml:"phone,omitempty"`
}

type campusFile struct {
	Name     string              `json:"name" yaml:"name"`
	Contacts []campusContactFile `json:"contacts,omitempty" yaml:"contacts,omitempty"`
}

type kbFile struct {
	Faculty         []domain.FacultyRecord `json:"faculty" yaml:"faculty"`
	KeyContacts     []domain.ContactRecord `json:"key_contacts" yaml:"key_contacts"`
	Campuses        []campusFile           `json:"campuses" yaml:"campuses"`
	Clubs           []domain.ClubRecord    `json:"clubs" yaml:"clubs"`
	Hostels         []domain.HostelRecord  `json:"hostels" yaml:"hostels"`
	ResearchCenters []string               `json:"research_centers" yaml:"research_centers"`
	LearningLabs    []string               `json:"learning_labs" yaml:"learning_labs"`
	ProductionUnits []string               `json:"production_units" yaml:"production_units"`
	Promoters       []string               `json:"university_promoters" yaml:"university_promoters"`
	SourceDomains   []string               `json:"source_domains" yaml:"source_domains"`
	SystemPrompt    string                 `json:"system_prompt" yaml:"system_prompt"`
}

// LoadFile reads a knowledge-base file. The format is picked by extension:
// .yaml/.yml parse as YAML, everything else as JSON.
func LoadFile(path string) (*KnowledgeBase, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}

	var file kbFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse knowledge base yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("parse knowledge base json: %w", err)
		}
	}

	return file.toKnowledgeBase(), nil
}

func (f *kbFile) toKnowledgeBase() *KnowledgeBase {
	campuses := make([]domain.CampusRecord, 0, len(f.Campuses))
	for _, c := range f.Campuses {
		contacts := make([]domain.CampusContact, 0, len(c.Contacts))
		for _, cc := range c.Contacts {
			contacts = append(contacts, domain.CampusContact{
				Role:  cc.Role,
				Name:  cc.Name,
				Phone: []string(cc.Phone),
			})
		}
		campuses = append(campuses, domain.CampusRecord{Name: c.Name, Contacts: contacts})
	}

	sourceDomains := f.SourceDomains
	if len(sourceDomains) == 0 {
		sourceDomains = append([]string(nil), defaultSourceDomains...)
	}

	return &KnowledgeBase{
		Faculty:         f.Faculty,
		KeyContacts:     f.KeyContacts,
		Campuses:        campuses,
		Clubs:           f.Clubs,
		Hostels:         f.Hostels,
		ResearchCenters: f.ResearchCenters,
		LearningLabs:    f.LearningLabs,
		ProductionUnits: f.ProductionUnits,
		Promoters:       f.Promoters,
		SourceDomains:   sourceDomains,
		SystemPrompt:    f.SystemPrompt,
	}
}
