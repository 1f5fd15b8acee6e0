package services

import "strings"

// categoryKeywords maps task categories to the keywords that select them.
// The same table is spelled out in the report prompt so that model-generated
// grids and locally computed ones agree.
var categoryKeywords = []struct {
	Category string
	Keywords []string
}{
	{"Reporting & Analysis", []string{"report", "analysis"}},
	{"Development", []string{"code", "develop"}},
	{"Meetings & Coordination", []string{"meeting", "schedule"}},
	{"Cooking & Meals", []string{"grill", "cook", "food"}},
	{"Maintenance & Repair", []string{"fix", "repair"}},
	{"Housekeeping", []string{"clean", "organize"}},
	{"Health & Fitness", []string{"exercise", "workout"}},
}

const categoryGeneral = "General"

// CategorizeTask assigns a task to a category by keyword match against its
// title and description. The first matching category in table order wins;
// tasks matching nothing fall into "General".
func CategorizeTask(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, c := range categoryKeywords {
		for _, kw := range c.Keywords {
			if strings.Contains(text, kw) {
				return c.Category
			}
		}
	}
	return categoryGeneral
}
