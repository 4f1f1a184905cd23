package table

// SeedColumns is the default column registry for a first run.
func SeedColumns() []Column {
	return []Column{
		{Key: "name", Label: "Name", Visible: true},
		{Key: "email", Label: "Email", Visible: true},
		{Key: "age", Label: "Age", Visible: true},
		{Key: "role", Label: "Role", Visible: true},
		{Key: "department", Label: "Department", Visible: false},
		{Key: "location", Label: "Location", Visible: false},
	}
}

// SeedRecords is the default record set for a first run.
func SeedRecords() []Record {
	return []Record{
		{"id": "1", "name": "John Doe", "email": "john.doe@example.com", "age": 30, "role": "Senior Developer", "department": "Engineering", "location": "New York"},
		{"id": "2", "name": "Jane Smith", "email": "jane.smith@example.com", "age": 28, "role": "UX Designer", "department": "Design", "location": "San Francisco"},
		{"id": "3", "name": "Bob Johnson", "email": "bob.johnson@example.com", "age": 35, "role": "Product Manager", "department": "Product", "location": "Chicago"},
		{"id": "4", "name": "Alice Brown", "email": "alice.brown@example.com", "age": 32, "role": "Data Analyst", "department": "Analytics", "location": "Boston"},
		{"id": "5", "name": "Charlie Wilson", "email": "charlie.wilson@example.com", "age": 29, "role": "Frontend Developer", "department": "Engineering", "location": "Seattle"},
		{"id": "6", "name": "Diana Prince", "email": "diana.prince@example.com", "age": 31, "role": "Marketing Manager", "department": "Marketing", "location": "Los Angeles"},
		{"id": "7", "name": "Edward Clark", "email": "edward.clark@example.com", "age": 27, "role": "Backend Developer", "department": "Engineering", "location": "Austin"},
		{"id": "8", "name": "Fiona Davis", "email": "fiona.davis@example.com", "age": 33, "role": "HR Manager", "department": "Human Resources", "location": "Denver"},
	}
}
