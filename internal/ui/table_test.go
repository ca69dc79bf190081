package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "#", Width: 4},
		{Title: "Diameter (mm)", Width: 14},
	}
	rows := []table.Row{
		{"1", "3.33"},
		{"2", "7.10"},
	}

	tbl := NewTable(columns, rows)

	view := tbl.View()
	assert.NotEmpty(t, view)
	assert.Contains(t, view, "Diameter (mm)")
	assert.Contains(t, view, "3.33")
	assert.Contains(t, view, "7.10")
}

func TestNewTable_EmptyRows(t *testing.T) {
	columns := []TableColumn{
		{Title: "#", Width: 4},
	}
	rows := []table.Row{}

	tbl := NewTable(columns, rows)
	view := tbl.View()

	assert.NotEmpty(t, view)
	assert.Contains(t, view, "#")
}

func TestRenderSimpleTable(t *testing.T) {
	columns := []TableColumn{
		{Title: "#", Width: 4},
		{Title: "Diameter (mm)", Width: 14},
	}
	rows := [][]string{
		{"1", "12.50"},
	}

	out := RenderSimpleTable(columns, rows)
	assert.Contains(t, out, "12.50")
}

func TestRenderSimpleTable_NoRows(t *testing.T) {
	out := RenderSimpleTable([]TableColumn{{Title: "#", Width: 4}}, nil)
	assert.Empty(t, out)
}
