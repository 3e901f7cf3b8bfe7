package services

import "strings"

// AllCategories is the catalogue filter value that matches every category.
const AllCategories = "All Categories"

// Categories lists the catalogue filter options in display order.
var Categories = []string{
	AllCategories,
	"Programming",
	"Design",
	"Business",
	"Marketing",
	"Personal Development",
}

// CourseFilter narrows a catalogue listing. Zero values match everything.
type CourseFilter struct {
	Query    string
	Category string
}

// SearchCourses keeps the summaries whose title or description contains the
// query and whose category equals the filter category, ignoring case.
func SearchCourses(summaries []CourseSummary, filter CourseFilter) []CourseSummary {
	query := strings.ToLower(filter.Query)
	matchAll := filter.Category == "" || filter.Category == AllCategories

	out := make([]CourseSummary, 0, len(summaries))
	for _, s := range summaries {
		matchesSearch := strings.Contains(strings.ToLower(s.Course.Title), query) ||
			strings.Contains(strings.ToLower(s.Course.Description), query)
		matchesCategory := matchAll || strings.EqualFold(s.Course.Category, filter.Category)
		if matchesSearch && matchesCategory {
			out = append(out, s)
		}
	}
	return out
}
