package kb

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/centai/centai/internal/core/domain"
)

// xlsxColumns maps sheet header names to faculty record fields. Headers are
// matched after lower-casing and trimming, so "Profile URL" and
// "profile_url" both work.
var xlsxColumns = map[string]string{
	"name":        "name",
	"role":        "role",
	"designation": "role",
	"department":  "department",
	"dept":        "department",
	"school":      "school",
	"campus":      "campus",
	"email":       "email",
	"phone":       "phone",
	"mobile":      "phone",
	"profile url": "profile_url",
	"profile_url": "profile_url",
	"url":         "profile_url",
}

// ImportFacultyXLSX reads faculty directory rows from the first sheet of a
// spreadsheet export. The first row must be a header; rows without a name
// are skipped.
func ImportFacultyXLSX(path string) ([]domain.FacultyRecord, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open faculty sheet: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("faculty sheet: workbook has no sheets")
	}
	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read faculty sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	fields := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		fields[i] = xlsxColumns[strings.ToLower(strings.TrimSpace(header))]
	}

	out := make([]domain.FacultyRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var rec domain.FacultyRecord
		for i, cell := range row {
			if i >= len(fields) {
				break
			}
			value := strings.TrimSpace(cell)
			if value == "" {
				continue
			}
			switch fields[i] {
			case "name":
				rec.Name = value
			case "role":
				rec.Role = value
			case "department":
				rec.Department = value
			case "school":
				rec.School = value
			case "campus":
				rec.Campus = value
			case "email":
				rec.Email = value
			case "phone":
				rec.Phone = value
			case "profile_url":
				rec.ProfileURL = value
			}
		}
		if rec.Name == "" {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}
