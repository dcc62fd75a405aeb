package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exam-question-categorizer/models"
)

var _ Store = (*Memory)(nil)
var _ Store = (*Xorm)(nil)

func TestMemory_AssignsIdsInOrder(t *testing.T) {
	m := NewMemory()
	math := models.Subject{Name: "math"}
	art := models.Subject{Name: "art", ExamTypeId: 2}
	require.NoError(t, m.AddSubject(&math))
	require.NoError(t, m.AddSubject(&art))
	assert.Equal(t, int64(1), math.Id)
	assert.Equal(t, int64(2), art.Id)

	subjects, err := m.Subjects()
	require.NoError(t, err)
	assert.Equal(t, []models.Subject{math, art}, subjects)
}

func TestMemory_SnapshotsAreCopies(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.AddKeyword(&models.Keyword{Value: "acid", SubjectId: 1}))

	keywords, err := m.Keywords()
	require.NoError(t, err)
	keywords[0].Value = "changed"

	again, err := m.Keywords()
	require.NoError(t, err)
	assert.Equal(t, "acid", again[0].Value)
}

func TestMemory_Question(t *testing.T) {
	m := NewMemory()
	q := models.Question{Text: "What is art?", ExamYearId: 1, ExamTypeId: 1}
	require.NoError(t, m.AddQuestion(&q))

	got, err := m.Question(q.Id)
	require.NoError(t, err)
	assert.Equal(t, q, *got)

	for _, id := range []int64{0, -1, 2} {
		_, err = m.Question(id)
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestMemory_Users(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.AddUser(&models.User{Username: "ada", Password: "x", Role: models.RoleMember}))
	assert.ErrorIs(t, m.AddUser(&models.User{Username: "ada"}), ErrDuplicate)

	u, err := m.UserByName("ada")
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, u.Role)

	_, err = m.UserByName("bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_EmptyListsAreNotNil(t *testing.T) {
	m := NewMemory()
	years, err := m.Years()
	require.NoError(t, err)
	assert.NotNil(t, years)
	examTypes, err := m.ExamTypes()
	require.NoError(t, err)
	assert.NotNil(t, examTypes)
}

func TestMemory_ConcurrentWrites(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.AddYear(&models.Year{YearValue: "2024"})
		}()
	}
	wg.Wait()

	years, err := m.Years()
	require.NoError(t, err)
	require.Len(t, years, 50)
	for i, y := range years {
		assert.Equal(t, int64(i+1), y.Id)
	}
}
