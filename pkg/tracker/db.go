package tracker

import (
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is the current snapshot schema.
const SchemaVersion = 1

// Database is the root aggregate for one profile: metadata plus the ordered
// characters and their ordered tasks. Snapshots are treated as immutable;
// all changes flow through the session store's copy-on-write update, which
// stamps Meta on every mutation.
type Database struct {
	SchemaVersion int         `json:"schemaVersion"`
	Profile       Profile     `json:"profile"`
	Meta          Meta        `json:"meta"`
	Characters    []Character `json:"characters"`
}

// Profile holds the player-facing identity of a snapshot.
type Profile struct {
	DisplayName string    `json:"displayName"`
	CreatedAt   Timestamp `json:"createdAt"`
	LastOpenAt  Timestamp `json:"lastOpenAt"`
}

// Meta is stamped by the session store on every mutation.
type Meta struct {
	UpdatedAt Timestamp `json:"updatedAt"`
	Revision  int       `json:"revision"`
}

// Character is a named grouping of tasks. Task order is the display and
// drag order and is preserved exactly except where explicitly reordered.
type Character struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt Timestamp `json:"createdAt"`
	Tasks     []Task    `json:"tasks"`
}

// NewDatabase creates a fresh snapshot at revision 0 for a display name that
// has no stored profile yet.
func NewDatabase(displayName string, now time.Time) *Database {
	return &Database{
		SchemaVersion: SchemaVersion,
		Profile: Profile{
			DisplayName: displayName,
			CreatedAt:   Stamp(now),
			LastOpenAt:  Stamp(now),
		},
		Meta:       Meta{UpdatedAt: Stamp(now), Revision: 0},
		Characters: []Character{},
	}
}

// NewCharacter creates a character seeded with the default task set.
func NewCharacter(name string, now time.Time) Character {
	return Character{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: Stamp(now),
		Tasks:     DefaultTasks(),
	}
}

// Clone deep-copies the snapshot so a mutator can build the next revision
// without touching the current one.
func (db *Database) Clone() *Database {
	if db == nil {
		return nil
	}
	next := *db
	next.Characters = make([]Character, len(db.Characters))
	for i, c := range db.Characters {
		next.Characters[i] = c.Clone()
	}
	return &next
}

// Clone deep-copies a character and its task list.
func (c Character) Clone() Character {
	next := c
	next.Tasks = append([]Task(nil), c.Tasks...)
	return next
}

// Character returns a pointer to the character with the given id, or nil.
func (db *Database) Character(id string) *Character {
	for i := range db.Characters {
		if db.Characters[i].ID == id {
			return &db.Characters[i]
		}
	}
	return nil
}

// Task returns pointers to the character and task with the given ids, or
// nils when either is missing. Operations on missing ids are no-ops by
// design.
func (db *Database) Task(characterID, taskID string) (*Character, *Task) {
	c := db.Character(characterID)
	if c == nil {
		return nil, nil
	}
	return c, c.Task(taskID)
}

// Task returns a pointer to the task with the given id, or nil.
func (c *Character) Task(id string) *Task {
	for i := range c.Tasks {
		if c.Tasks[i].ID == id {
			return &c.Tasks[i]
		}
	}
	return nil
}

// RemoveCharacter drops the character with the given id. Missing ids are a
// no-op.
func (db *Database) RemoveCharacter(id string) {
	kept := db.Characters[:0]
	for _, c := range db.Characters {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	db.Characters = kept
}

// RemoveTask drops the task with the given id from the character. Missing
// ids are a no-op.
func (c *Character) RemoveTask(id string) {
	kept := c.Tasks[:0]
	for _, t := range c.Tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	c.Tasks = kept
}
