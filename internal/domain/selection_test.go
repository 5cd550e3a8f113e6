package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	haircut  = Service{ID: 1, Name: "Стрижка", DurationMinutes: 45, Price: 2500, Active: true}
	coloring = Service{ID: 2, Name: "Окрашивание", DurationMinutes: 90, Price: 6000, Active: true}
	styling  = Service{ID: 3, Name: "Укладка", DurationMinutes: 30, Price: 1500, Active: true}
)

func TestSelection_ToggleAddAndRemove(t *testing.T) {
	sel := NewSelection()
	assert.True(t, sel.IsEmpty())

	sel = sel.Toggle(haircut)
	assert.True(t, sel.Contains(haircut.ID))
	assert.Equal(t, 1, sel.Count())

	// Повторный toggle той же услуги убирает её
	sel = sel.Toggle(haircut)
	assert.False(t, sel.Contains(haircut.ID))
	assert.True(t, sel.IsEmpty())
}

func TestSelection_PreservesOrderOnRemoval(t *testing.T) {
	sel := NewSelection(haircut, coloring, styling)

	sel = sel.Toggle(coloring)

	services := sel.Services()
	assert.Equal(t, []int64{haircut.ID, styling.ID}, []int64{services[0].ID, services[1].ID})

	// Возвращенная услуга добавляется в конец
	sel = sel.Toggle(coloring)
	services = sel.Services()
	assert.Equal(t, coloring.ID, services[2].ID)
}

func TestSelection_TotalsAreRecomputedFromCurrentContents(t *testing.T) {
	sel := NewSelection(haircut, coloring)
	assert.Equal(t, 135, sel.TotalDurationMinutes())
	assert.Equal(t, 8500.0, sel.TotalPrice())

	sel = sel.Toggle(coloring)
	assert.Equal(t, 45, sel.TotalDurationMinutes())
	assert.Equal(t, 2500.0, sel.TotalPrice())

	sel = sel.Toggle(styling)
	assert.Equal(t, 75, sel.TotalDurationMinutes())
	assert.Equal(t, 4000.0, sel.TotalPrice())
}

func TestSelection_EmptyTotalsAreZero(t *testing.T) {
	sel := NewSelection()
	assert.Equal(t, 0, sel.TotalDurationMinutes())
	assert.Equal(t, 0.0, sel.TotalPrice())
}

func TestSelection_ImmutableValueSemantics(t *testing.T) {
	base := NewSelection(haircut)
	modified := base.Toggle(coloring)

	assert.Equal(t, 1, base.Count())
	assert.Equal(t, 2, modified.Count())
}

func TestSelection_DeduplicatesInitialServices(t *testing.T) {
	sel := NewSelection(haircut, haircut)
	assert.Equal(t, 1, sel.Count())
}
