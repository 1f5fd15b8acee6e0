package services

import "testing"

func TestCategorizeTask(t *testing.T) {
	tests := []struct {
		title       string
		description string
		want        string
	}{
		{"Write quarterly report", "", "Reporting & Analysis"},
		{"Data analysis session", "", "Reporting & Analysis"},
		{"Review code changes", "", "Development"},
		{"Develop new feature", "", "Development"},
		{"Team meeting", "", "Meetings & Coordination"},
		{"Schedule interviews", "", "Meetings & Coordination"},
		{"Grill burgers", "", "Cooking & Meals"},
		{"Cook dinner", "", "Cooking & Meals"},
		{"Buy food for the week", "", "Cooking & Meals"},
		{"Fix the sink", "", "Maintenance & Repair"},
		{"Repair bike tire", "", "Maintenance & Repair"},
		{"Clean the garage", "", "Housekeeping"},
		{"Organize bookshelf", "", "Housekeeping"},
		{"Morning exercise", "", "Health & Fitness"},
		{"Leg workout", "", "Health & Fitness"},
		{"Call mom", "", "General"},
		{"", "", "General"},
		// keyword can live in the description
		{"Saturday", "deep clean the kitchen", "Housekeeping"},
		// matching is case-insensitive
		{"FIX THE ROOF", "", "Maintenance & Repair"},
	}
	for _, tt := range tests {
		if got := CategorizeTask(tt.title, tt.description); got != tt.want {
			t.Errorf("CategorizeTask(%q, %q) = %q, want %q", tt.title, tt.description, got, tt.want)
		}
	}
}
