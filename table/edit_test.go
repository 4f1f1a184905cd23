package table

import (
	"testing"

	. "github.com/fulldump/biff"
)

func editFixture() (*Store, *Sessions) {
	store := NewStore()
	store.Load(SeedRecords())
	return store, NewSessions(store)
}

func TestSessionsBegin(t *testing.T) {

	// Setup
	_, sessions := editFixture()

	// Run
	err := sessions.Begin("1")

	// Check: buffer seeded with current values
	AssertNil(err)
	AssertEqual(sessions.IsEditing("1"), true)
	buffer, _ := sessions.Buffer("1")
	AssertEqual(buffer["name"], "John Doe")
}

func TestSessionsBeginTwiceKeepsBuffer(t *testing.T) {

	// Setup
	_, sessions := editFixture()
	sessions.Begin("1")
	sessions.SetField("1", "name", "Johnny")

	// Run
	err := sessions.Begin("1")

	// Check
	AssertNil(err)
	buffer, _ := sessions.Buffer("1")
	AssertEqual(buffer["name"], "Johnny")
}

func TestSessionsBeginNotFound(t *testing.T) {
	_, sessions := editFixture()
	AssertEqual(sessions.Begin("invented"), ErrRecordNotFound)
}

func TestSessionsSetFieldBuffersOnly(t *testing.T) {

	// Setup
	store, sessions := editFixture()
	sessions.Begin("1")

	// Run
	err := sessions.SetField("1", "name", "Johnny")

	// Check: the store is untouched until commit
	AssertNil(err)
	record, _ := store.Get("1")
	AssertEqual(record["name"], "John Doe")
}

func TestSessionsSetFieldNotEditing(t *testing.T) {
	_, sessions := editFixture()
	AssertEqual(sessions.SetField("1", "name", "Johnny"), ErrNotEditing)
}

func TestSessionsSetFieldIgnoresID(t *testing.T) {

	// Setup
	_, sessions := editFixture()
	sessions.Begin("1")

	// Run
	err := sessions.SetField("1", "id", "evil")

	// Check
	AssertNil(err)
	buffer, _ := sessions.Buffer("1")
	AssertEqual(buffer["id"], "1")
}

func TestSessionsSetFieldNullKeepsKey(t *testing.T) {

	// Setup
	store, sessions := editFixture()
	sessions.Begin("1")

	// Run: a null value must not remove the field on merge
	err := sessions.SetField("1", "role", nil)
	fieldErrors, commitErr := sessions.Commit("1")

	// Check
	AssertNil(err)
	AssertNil(commitErr)
	AssertEqual(len(fieldErrors), 0)
	record, _ := store.Get("1")
	AssertEqual(record["role"], "")
}

func TestSessionsCommit(t *testing.T) {

	// Setup
	store, sessions := editFixture()
	sessions.Begin("1")
	sessions.SetField("1", "name", "Johnny")
	sessions.SetField("1", "age", "31")

	// Run
	fieldErrors, err := sessions.Commit("1")

	// Check
	AssertNil(err)
	AssertEqual(len(fieldErrors), 0)
	AssertEqual(sessions.IsEditing("1"), false)
	record, _ := store.Get("1")
	AssertEqual(record["name"], "Johnny")
}

func TestSessionsCommitInvalidAge(t *testing.T) {

	// Setup
	store, sessions := editFixture()
	sessions.Begin("1")
	sessions.SetField("1", "age", "not-a-number")

	// Run
	fieldErrors, err := sessions.Commit("1")

	// Check: errors come back as data and the session stays open
	AssertNil(err)
	AssertEqual(fieldErrors["age"], "Age must be a number")
	AssertEqual(sessions.IsEditing("1"), true)
	record, _ := store.Get("1")
	AssertEqualJson(record["age"], 30)
}

func TestSessionsCommitNotEditing(t *testing.T) {
	_, sessions := editFixture()
	_, err := sessions.Commit("1")
	AssertEqual(err, ErrNotEditing)
}

func TestSessionsCommitAllPerRowBuffers(t *testing.T) {

	// Setup: two sessions with different pending values for the same field
	store, sessions := editFixture()
	sessions.Begin("1")
	sessions.Begin("2")
	sessions.SetField("1", "role", "Architect")
	sessions.SetField("2", "role", "Designer")

	// Run
	failed, err := sessions.CommitAll()

	// Check: each record gets its own buffer, not a shared one
	AssertNil(err)
	AssertEqual(len(failed), 0)
	first, _ := store.Get("1")
	second, _ := store.Get("2")
	AssertEqual(first["role"], "Architect")
	AssertEqual(second["role"], "Designer")
	AssertEqual(len(sessions.Editing()), 0)
}

func TestSessionsCommitAllPartialFailure(t *testing.T) {

	// Setup
	store, sessions := editFixture()
	sessions.Begin("1")
	sessions.Begin("2")
	sessions.SetField("1", "age", "banana")
	sessions.SetField("2", "name", "Janet")

	// Run
	failed, err := sessions.CommitAll()

	// Check: the clean one lands, the dirty one stays editing
	AssertNil(err)
	AssertEqual(len(failed), 1)
	AssertEqual(failed["1"]["age"], "Age must be a number")
	AssertEqual(sessions.Editing(), []string{"1"})
	second, _ := store.Get("2")
	AssertEqual(second["name"], "Janet")
}

func TestSessionsCancel(t *testing.T) {

	// Setup
	store, sessions := editFixture()
	sessions.Begin("1")
	sessions.SetField("1", "name", "Johnny")

	// Run
	sessions.Cancel("1")
	sessions.Cancel("invented") // no-op

	// Check
	AssertEqual(sessions.IsEditing("1"), false)
	record, _ := store.Get("1")
	AssertEqual(record["name"], "John Doe")
}

func TestSessionsCancelAll(t *testing.T) {
	_, sessions := editFixture()
	sessions.Begin("1")
	sessions.Begin("2")

	sessions.CancelAll()

	AssertEqual(len(sessions.Editing()), 0)
}

func TestSessionsEditingSorted(t *testing.T) {
	_, sessions := editFixture()
	sessions.Begin("3")
	sessions.Begin("1")
	sessions.Begin("2")

	AssertEqual(sessions.Editing(), []string{"1", "2", "3"})
}
