package usecase

import (
	"github.com/centai/centai/internal/core/domain"
	"github.com/centai/centai/internal/kb"
)

// newTestKB builds the knowledge base shared by the handler tests. Keep the
// records small; individual tests that need special shapes build their own.
func newTestKB() *kb.KnowledgeBase {
	return &kb.KnowledgeBase{
		SystemPrompt: "You are the university assistant.",
		Promoters:    []string{"Prof. Mukti Kanta Mishra", "Prof. D. N. Rao"},
		KeyContacts: []domain.ContactRecord{
			{Name: "Prof. Supriya Pattanayak", Role: "Vice Chancellor", Phone: "+91-111"},
			{Name: "Dr. Anita Patra", Role: "Registrar", Phone: "+91-333"},
			{Name: "Mr. Sambit Nayak", Role: "Director, Admission", Phone: "+91-222"},
		},
		Campuses: []domain.CampusRecord{
			{Name: "Bhubaneswar", Contacts: []domain.CampusContact{
				{Role: "HQ", Name: "HIG-5, Pokhariput, Bhubaneswar 751020", Phone: []string{"+91-674-1"}},
				{Role: "Admission Office", Name: "Jatni Campus", Phone: []string{"+91-738-1"}},
			}},
			{Name: "Paralakhemundi", Contacts: []domain.CampusContact{
				{Role: "Campus Office", Name: "Alluri Nagar, Gajapati 761211", Phone: []string{"+91-680-1"}},
			}},
			{Name: "Vizianagaram", Contacts: []domain.CampusContact{
				{Role: "Campus Office", Name: "Gidijala Junction, AP 531173", Phone: []string{"+91-891-1", "+91-738-2"}},
			}},
		},
		Faculty: []domain.FacultyRecord{
			{
				Name: "Dr. Sujata Chakravarty", Role: "Dean",
				Department: "Computer Science and Engineering",
				School:     "School of Engineering and Technology",
				Campus:     "Paralakhemundi",
				Email:      "sujata.chakravarty@cutm.ac.in",
				ProfileURL: "https://faculty.cutm.ac.in/sujata-chakravarty/",
			},
			{
				Name: "Dr. Rabi Narayan Panda", Role: "Professor",
				Department: "Mechanical Engineering",
				School:     "School of Engineering and Technology",
				Campus:     "Bhubaneswar",
				Email:      "rabi.panda@cutm.ac.in",
			},
			{
				Name: "Dr. Priyadarsini Sahoo", Role: "Associate Professor",
				Department: "Agriculture",
				School:     "MS Swaminathan School of Agriculture",
				Campus:     "Paralakhemundi",
				Email:      "priyadarsini.sahoo@cutm.ac.in",
			},
		},
		Clubs: []domain.ClubRecord{
			{Name: "Robotics Club", Campus: "Bhubaneswar", Category: "Science and Technology",
				FacultyCoordinator: "Dr. Rabi Narayan Panda", Contact: "+91-943-1", Email: "robotics@cutm.ac.in"},
			{Name: "Natya Drama Club", Campus: "Paralakhemundi", Category: "Cultural"},
		},
		Hostels: []domain.HostelRecord{
			{Name: "Aryabhatta Hostel", Campus: "Bhubaneswar", Type: "Boys", Capacity: 420},
			{Name: "Gargi Hostel", Campus: "Bhubaneswar", Type: "Girls", Capacity: 300},
			{Name: "Godavari Hostel", Campus: "Vizianagaram", Capacity: 240},
		},
		ResearchCenters: []string{"Centre for Smart Agriculture", "Centre for Robotics"},
		LearningLabs:    []string{"Fab Lab", "IoT Lab"},
		ProductionUnits: []string{"Bamboo Processing Unit"},
		SourceDomains:   []string{"https://cutm.ac.in"},
	}
}

// route parses a message and runs one handler against the test KB.
func route(h handlerFunc, k *kb.KnowledgeBase, message string) *routed {
	return h(parseQuery(message, k), k)
}
