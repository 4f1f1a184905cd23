package service

import (
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance walks the whole operations surface over HTTP. Every alternative
// replays its ancestors, so each branch starts from the seed data plus only
// the mutations of its own path.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Get table", func(a *biff.A) {
		resp := apiRequest("GET", "/table").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		body := resp.BodyJson().(JSON)
		biff.AssertEqualJson(body["totalCount"], 8)
		biff.AssertEqualJson(body["filteredCount"], 8)
		biff.AssertEqual(len(body["rows"].([]interface{})), 8)
	})

	a.Alternative("Get view params", func(a *biff.A) {
		resp := apiRequest("GET", "/view").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"searchTerm":  "",
			"sortConfig":  JSON{"key": "", "direction": "asc"},
			"page":        0,
			"rowsPerPage": 10,
		})
	})

	a.Alternative("Search", func(a *biff.A) {
		resp := apiRequest("POST", "/view:search").
			WithBodyJson(JSON{"term": "developer"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		body := resp.BodyJson().(JSON)
		biff.AssertEqualJson(body["filteredCount"], 3)
		biff.AssertEqualJson(body["totalCount"], 8)

		a.Alternative("Search matches any field", func(a *biff.A) {
			resp := apiRequest("POST", "/view:search").
				WithBodyJson(JSON{"term": "new york"}).Do()

			body := resp.BodyJson().(JSON)
			biff.AssertEqualJson(body["filteredCount"], 1)
		})

		a.Alternative("Search resets page", func(a *biff.A) {
			apiRequest("PUT", "/view").
				WithBodyJson(JSON{"rowsPerPage": 5, "page": 1}).Do()
			apiRequest("POST", "/view:search").
				WithBodyJson(JSON{"term": "a"}).Do()

			resp := apiRequest("GET", "/view").Do()
			biff.AssertEqualJson(resp.BodyJson().(JSON)["page"], 0)
		})

		a.Alternative("Clear search", func(a *biff.A) {
			resp := apiRequest("POST", "/view:search").
				WithBodyJson(JSON{"term": ""}).Do()

			body := resp.BodyJson().(JSON)
			biff.AssertEqualJson(body["filteredCount"], 8)
		})
	})

	a.Alternative("Sort on column", func(a *biff.A) {
		resp := apiRequest("POST", "/view:sortOn").
			WithBodyJson(JSON{"key": "age"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{"key": "age", "direction": "asc"})

		table := apiRequest("GET", "/table").Do().BodyJson().(JSON)
		rows := table["rows"].([]interface{})
		biff.AssertEqual(rows[0].(JSON)["name"], "Edward Clark")

		a.Alternative("Sort again toggles direction", func(a *biff.A) {
			resp := apiRequest("POST", "/view:sortOn").
				WithBodyJson(JSON{"key": "age"}).Do()

			biff.AssertEqualJson(resp.BodyJson(), JSON{"key": "age", "direction": "desc"})

			table := apiRequest("GET", "/table").Do().BodyJson().(JSON)
			rows := table["rows"].([]interface{})
			biff.AssertEqual(rows[0].(JSON)["name"], "Bob Johnson")
		})

		a.Alternative("Sort on another column resets to ascending", func(a *biff.A) {
			resp := apiRequest("POST", "/view:sortOn").
				WithBodyJson(JSON{"key": "name"}).Do()

			biff.AssertEqualJson(resp.BodyJson(), JSON{"key": "name", "direction": "asc"})
		})
	})

	a.Alternative("Set view", func(a *biff.A) {
		resp := apiRequest("PUT", "/view").
			WithBodyJson(JSON{"rowsPerPage": 5, "page": 1}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		body := resp.BodyJson().(JSON)
		biff.AssertEqualJson(body["rowsPerPage"], 5)
		biff.AssertEqualJson(body["page"], 1)

		// 8 records, page size 5: second page holds the remainder
		table := apiRequest("GET", "/table").Do().BodyJson().(JSON)
		biff.AssertEqual(len(table["rows"].([]interface{})), 3)

		a.Alternative("Page beyond the end is empty", func(a *biff.A) {
			apiRequest("PUT", "/view").
				WithBodyJson(JSON{"page": 99}).Do()

			table := apiRequest("GET", "/table").Do().BodyJson().(JSON)
			biff.AssertEqual(len(table["rows"].([]interface{})), 0)
			biff.AssertEqualJson(table["filteredCount"], 8)
		})

		a.Alternative("Changing page size resets page", func(a *biff.A) {
			resp := apiRequest("PUT", "/view").
				WithBodyJson(JSON{"rowsPerPage": 25}).Do()

			body := resp.BodyJson().(JSON)
			biff.AssertEqualJson(body["rowsPerPage"], 25)
			biff.AssertEqualJson(body["page"], 0)
		})
	})

	a.Alternative("Set view - invalid page size", func(a *biff.A) {
		resp := apiRequest("PUT", "/view").
			WithBodyJson(JSON{"rowsPerPage": 7}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Set view - invalid direction", func(a *biff.A) {
		resp := apiRequest("PUT", "/view").
			WithBodyJson(JSON{"sortConfig": JSON{"key": "age", "direction": "sideways"}}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Stats", func(a *biff.A) {
		resp := apiRequest("GET", "/stats").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"totalRecords":    8,
			"visibleColumns":  4,
			"filteredResults": 8,
		})

		a.Alternative("Stats follow the search term", func(a *biff.A) {
			apiRequest("POST", "/view:search").
				WithBodyJson(JSON{"term": "engineering"}).Do()

			resp := apiRequest("GET", "/stats").Do()
			biff.AssertEqualJson(resp.BodyJson().(JSON)["filteredResults"], 3)
		})
	})

	a.Alternative("Add record", func(a *biff.A) {
		resp := apiRequest("POST", "/records").
			WithBodyJson(JSON{
				"name":  "Pablo Gomez",
				"email": "pablo@example.com",
				"age":   "30",
				"role":  "Developer",
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		record := resp.BodyJson().(JSON)["record"].(JSON)
		biff.AssertEqual(record["name"], "Pablo Gomez")
		biff.AssertEqualJson(record["age"], 30) // form value coerced to number
		biff.AssertEqual(record["department"], "")
		biff.AssertNotEqual(record["id"], "")

		a.Alternative("New record shows up in the table", func(a *biff.A) {
			table := apiRequest("GET", "/table").Do().BodyJson().(JSON)
			biff.AssertEqualJson(table["totalCount"], 9)
		})
	})

	a.Alternative("Add record - validation", func(a *biff.A) {
		resp := apiRequest("POST", "/records").
			WithBodyJson(JSON{
				"name":  "",
				"email": "not-an-email",
				"age":   "abc",
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"fieldErrors": JSON{
				"name":  "Name is required",
				"email": "Invalid email format",
				"age":   "Age must be a number",
			},
		})

		a.Alternative("Nothing was inserted", func(a *biff.A) {
			table := apiRequest("GET", "/table").Do().BodyJson().(JSON)
			biff.AssertEqualJson(table["totalCount"], 8)
		})
	})

	a.Alternative("Get record", func(a *biff.A) {
		resp := apiRequest("GET", "/records/1").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"id":         "1",
			"name":       "John Doe",
			"email":      "john.doe@example.com",
			"age":        30,
			"role":       "Senior Developer",
			"department": "Engineering",
			"location":   "New York",
		})
	})

	a.Alternative("Get record - not found", func(a *biff.A) {
		resp := apiRequest("GET", "/records/invented").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("Update record", func(a *biff.A) {
		resp := apiRequest("PATCH", "/records/1").
			WithBodyJson(JSON{"age": 31, "id": "evil"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		record := resp.BodyJson().(JSON)
		biff.AssertEqualJson(record["age"], 31)
		biff.AssertEqual(record["id"], "1") // id is immutable
		biff.AssertEqual(record["name"], "John Doe")

		a.Alternative("Update record - not found", func(a *biff.A) {
			resp := apiRequest("PATCH", "/records/invented").
				WithBodyJson(JSON{"age": 31}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})
	})

	a.Alternative("Delete record", func(a *biff.A) {
		resp := apiRequest("DELETE", "/records/2").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

		a.Alternative("Deleted record is gone", func(a *biff.A) {
			resp := apiRequest("GET", "/records/2").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)

			table := apiRequest("GET", "/table").Do().BodyJson().(JSON)
			biff.AssertEqualJson(table["totalCount"], 7)
		})

		a.Alternative("Delete twice is a no-op", func(a *biff.A) {
			resp := apiRequest("DELETE", "/records/2").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)
		})
	})

	a.Alternative("Find", func(a *biff.A) {
		resp := apiRequest("POST", "/records:find").
			WithBodyJson(JSON{
				"filter": JSON{"department": "Engineering"},
				"limit":  10,
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		lines := strings.Split(strings.TrimSpace(resp.BodyString()), "\n")
		biff.AssertEqual(len(lines), 3)
	})

	a.Alternative("Begin edit", func(a *biff.A) {
		resp := apiRequest("POST", "/records/1:beginEdit").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		buffer := resp.BodyJson().(JSON)
		biff.AssertEqual(buffer["name"], "John Doe")

		a.Alternative("Set field stays in the buffer", func(a *biff.A) {
			resp := apiRequest("POST", "/records/1:setField").
				WithBodyJson(JSON{"key": "name", "value": "Johnny"}).Do()

			buffer := resp.BodyJson().(JSON)
			biff.AssertEqual(buffer["name"], "Johnny")

			// The store is untouched until commit
			record := apiRequest("GET", "/records/1").Do().BodyJson().(JSON)
			biff.AssertEqual(record["name"], "John Doe")

			a.Alternative("Commit edit", func(a *biff.A) {
				resp := apiRequest("POST", "/records/1:commitEdit").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				record := resp.BodyJson().(JSON)["record"].(JSON)
				biff.AssertEqual(record["name"], "Johnny")

				edits := apiRequest("GET", "/edits").Do()
				biff.AssertEqualJson(edits.BodyJson(), []interface{}{})
			})

			a.Alternative("Cancel edit", func(a *biff.A) {
				resp := apiRequest("POST", "/records/1:cancelEdit").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

				record := apiRequest("GET", "/records/1").Do().BodyJson().(JSON)
				biff.AssertEqual(record["name"], "John Doe")
			})
		})

		a.Alternative("Commit edit - invalid age", func(a *biff.A) {
			apiRequest("POST", "/records/1:setField").
				WithBodyJson(JSON{"key": "age", "value": "banana"}).Do()
			resp := apiRequest("POST", "/records/1:commitEdit").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"fieldErrors": JSON{"age": "Age must be a number"},
			})

			// The record stays editing
			edits := apiRequest("GET", "/edits").Do()
			biff.AssertEqualJson(edits.BodyJson(), []interface{}{"1"})
		})

		a.Alternative("Begin edit twice keeps the buffer", func(a *biff.A) {
			apiRequest("POST", "/records/1:setField").
				WithBodyJson(JSON{"key": "name", "value": "Johnny"}).Do()
			resp := apiRequest("POST", "/records/1:beginEdit").Do()

			buffer := resp.BodyJson().(JSON)
			biff.AssertEqual(buffer["name"], "Johnny")
		})
	})

	a.Alternative("Set field - not editing", func(a *biff.A) {
		resp := apiRequest("POST", "/records/1:setField").
			WithBodyJson(JSON{"key": "name", "value": "Johnny"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Begin edit - not found", func(a *biff.A) {
		resp := apiRequest("POST", "/records/invented:beginEdit").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("Commit all", func(a *biff.A) {
		apiRequest("POST", "/records/1:beginEdit").Do()
		apiRequest("POST", "/records/2:beginEdit").Do()
		apiRequest("POST", "/records/1:setField").
			WithBodyJson(JSON{"key": "role", "value": "Architect"}).Do()
		apiRequest("POST", "/records/2:setField").
			WithBodyJson(JSON{"key": "role", "value": "Designer"}).Do()

		resp := apiRequest("POST", "/edits:commitAll").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"failed":  JSON{},
			"editing": []interface{}{},
		})

		// Each record committed its own buffer
		first := apiRequest("GET", "/records/1").Do().BodyJson().(JSON)
		second := apiRequest("GET", "/records/2").Do().BodyJson().(JSON)
		biff.AssertEqual(first["role"], "Architect")
		biff.AssertEqual(second["role"], "Designer")
	})

	a.Alternative("Commit all - partial failure", func(a *biff.A) {
		apiRequest("POST", "/records/1:beginEdit").Do()
		apiRequest("POST", "/records/2:beginEdit").Do()
		apiRequest("POST", "/records/1:setField").
			WithBodyJson(JSON{"key": "age", "value": "banana"}).Do()
		apiRequest("POST", "/records/2:setField").
			WithBodyJson(JSON{"key": "name", "value": "Janet"}).Do()

		resp := apiRequest("POST", "/edits:commitAll").Do()

		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"failed":  JSON{"1": JSON{"age": "Age must be a number"}},
			"editing": []interface{}{"1"},
		})

		second := apiRequest("GET", "/records/2").Do().BodyJson().(JSON)
		biff.AssertEqual(second["name"], "Janet")
	})

	a.Alternative("Cancel all", func(a *biff.A) {
		apiRequest("POST", "/records/1:beginEdit").Do()
		apiRequest("POST", "/records/2:beginEdit").Do()

		resp := apiRequest("POST", "/edits:cancelAll").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNoContent)

		edits := apiRequest("GET", "/edits").Do()
		biff.AssertEqualJson(edits.BodyJson(), []interface{}{})
	})

	a.Alternative("List columns", func(a *biff.A) {
		resp := apiRequest("GET", "/columns").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		columns := resp.BodyJson().([]interface{})
		biff.AssertEqual(len(columns), 6)
		biff.AssertEqualJson(columns[0], JSON{"key": "name", "label": "Name", "visible": true})
		biff.AssertEqualJson(columns[4], JSON{"key": "department", "label": "Department", "visible": false})

		a.Alternative("List only visible columns", func(a *biff.A) {
			resp := apiRequest("GET", "/columns").
				WithQuery("visible", "true").Do()

			columns := resp.BodyJson().([]interface{})
			biff.AssertEqual(len(columns), 4)
			biff.AssertEqual(columns[3].(JSON)["key"], "role")
		})
	})

	a.Alternative("Add column", func(a *biff.A) {
		resp := apiRequest("POST", "/columns").
			WithBodyJson(JSON{"label": "Phone Number"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"key":     "phone_number",
			"label":   "Phone Number",
			"visible": true,
		})

		a.Alternative("Existing records are backfilled", func(a *biff.A) {
			record := apiRequest("GET", "/records/1").Do().BodyJson().(JSON)
			biff.AssertEqual(record["phone_number"], "")
		})

		a.Alternative("Duplicate column key", func(a *biff.A) {
			resp := apiRequest("POST", "/columns").
				WithBodyJson(JSON{"label": "phone  NUMBER"}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusConflict)
		})
	})

	a.Alternative("Toggle column", func(a *biff.A) {
		resp := apiRequest("POST", "/columns/department:toggle").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		for _, item := range resp.BodyJson().([]interface{}) {
			column := item.(JSON)
			if column["key"] == "department" {
				biff.AssertEqual(column["visible"], true)
			}
		}

		a.Alternative("Stats count the new visible column", func(a *biff.A) {
			resp := apiRequest("GET", "/stats").Do()
			biff.AssertEqualJson(resp.BodyJson().(JSON)["visibleColumns"], 5)
		})
	})

	a.Alternative("Reorder columns", func(a *biff.A) {
		resp := apiRequest("POST", "/columns:reorder").
			WithBodyJson(JSON{"keys": []string{"email", "name", "age", "role", "location", "department"}}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		columns := resp.BodyJson().([]interface{})
		biff.AssertEqual(columns[0].(JSON)["key"], "email")
		biff.AssertEqual(columns[1].(JSON)["key"], "name")
	})

	a.Alternative("Reorder columns - invalid permutation", func(a *biff.A) {
		resp := apiRequest("POST", "/columns:reorder").
			WithBodyJson(JSON{"keys": []string{"email", "name"}}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Set column label", func(a *biff.A) {
		resp := apiRequest("POST", "/columns/role:setLabel").
			WithBodyJson(JSON{"label": "Job Title"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		for _, item := range resp.BodyJson().([]interface{}) {
			column := item.(JSON)
			if column["key"] == "role" {
				biff.AssertEqual(column["label"], "Job Title")
			}
		}
	})

	a.Alternative("Set column label - not found", func(a *biff.A) {
		resp := apiRequest("POST", "/columns/invented:setLabel").
			WithBodyJson(JSON{"label": "Nope"}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("Import", func(a *biff.A) {
		payload := "name,email,age,role\n" +
			"Pablo,pablo@example.com,30,Developer\n" +
			"Sara,sara@example.com,28,Designer\n"
		resp := apiRequest("POST", "/import").
			WithQuery("filename", "users.csv").
			WithBodyString(payload).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"total":   2,
			"valid":   2,
			"invalid": 0,
			"errors":  []interface{}{},
		})

		a.Alternative("Imported records land in the table", func(a *biff.A) {
			table := apiRequest("GET", "/table").Do().BodyJson().(JSON)
			biff.AssertEqualJson(table["totalCount"], 10)
		})
	})

	a.Alternative("Import - all or nothing", func(a *biff.A) {
		payload := "name,email,age\n" +
			"Pablo,pablo@example.com,30\n" +
			",broken,abc\n"
		resp := apiRequest("POST", "/import").
			WithQuery("filename", "users.csv").
			WithBodyString(payload).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		body := resp.BodyJson().(JSON)
		biff.AssertEqualJson(body["valid"], 1)
		biff.AssertEqualJson(body["invalid"], 1)
		biff.AssertEqual(len(body["errors"].([]interface{})), 3)

		a.Alternative("The valid row was rejected too", func(a *biff.A) {
			table := apiRequest("GET", "/table").Do().BodyJson().(JSON)
			biff.AssertEqualJson(table["totalCount"], 8)
		})
	})

	a.Alternative("Import - wrong extension", func(a *biff.A) {
		resp := apiRequest("POST", "/import").
			WithQuery("filename", "users.txt").
			WithBodyString("name,email\n").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		body := resp.BodyJson().(JSON)
		errors := body["errors"].([]interface{})
		biff.AssertEqualJson(errors[0], JSON{
			"row":     0,
			"field":   "file",
			"message": "Please select a valid CSV file",
		})
	})

	a.Alternative("Export", func(a *biff.A) {
		resp := apiRequest("GET", "/export").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.Header.Get("Content-Type"), "text/csv; charset=utf-8")

		lines := strings.Split(strings.TrimSpace(resp.BodyString()), "\n")
		biff.AssertEqual(len(lines), 9) // header plus 8 records
		biff.AssertEqual(lines[0], "name,email,age,role")
		biff.AssertEqual(lines[1], "John Doe,john.doe@example.com,30,Senior Developer")

		a.Alternative("Export respects the search term", func(a *biff.A) {
			apiRequest("POST", "/view:search").
				WithBodyJson(JSON{"term": "engineering"}).Do()

			resp := apiRequest("GET", "/export").Do()
			lines := strings.Split(strings.TrimSpace(resp.BodyString()), "\n")
			biff.AssertEqual(len(lines), 4)
		})

		a.Alternative("Export respects column visibility", func(a *biff.A) {
			apiRequest("POST", "/columns/department:toggle").Do()

			resp := apiRequest("GET", "/export").Do()
			lines := strings.Split(strings.TrimSpace(resp.BodyString()), "\n")
			biff.AssertEqual(lines[0], "name,email,age,role,department")
		})
	})

	a.Alternative("Settings", func(a *biff.A) {
		resp := apiRequest("GET", "/settings").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{"isDarkMode": false})

		a.Alternative("Toggle dark mode", func(a *biff.A) {
			resp := apiRequest("POST", "/settings:toggleDarkMode").Do()

			biff.AssertEqualJson(resp.BodyJson(), JSON{"isDarkMode": true})

			resp = apiRequest("POST", "/settings:toggleDarkMode").Do()
			biff.AssertEqualJson(resp.BodyJson(), JSON{"isDarkMode": false})
		})
	})

	a.Alternative("Unknown endpoint", func(a *biff.A) {
		resp := apiRequest("GET", "/invented").Do()

		biff.AssertEqual(resp.StatusCode, http.StatusNotImplemented)
	})
}
