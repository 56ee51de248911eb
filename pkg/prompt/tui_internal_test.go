//nolint:varnamelen,testpackage // Test files use idiomatic short variable names
package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"repoextract/pkg/combine"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m model, msgs ...tea.Msg) (model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, msg := range msgs {
		var updated tea.Model
		updated, cmd = m.Update(msg)
		next, ok := updated.(model)
		if !ok {
			t.Fatalf("Update returned %T, want model", updated)
		}
		m = next
	}
	return m, cmd
}

func testEntries() []combine.OversizedFile {
	return []combine.OversizedFile{
		{Path: "a.sql", Size: 2 << 20},
		{Path: "b.sql", Size: 3 << 20},
		{Path: "c.sql", Size: 4 << 20},
	}
}

func TestModelStartsWithEverythingAccepted(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m := newModel(testEntries())

	g.Expect(m.selected).To(Equal([]bool{true, true, true}))
	g.Expect(m.cursor).To(Equal(0))
	g.Expect(m.Init()).To(BeNil())
}

func TestModelRejectAdvancesCursor(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m, cmd := press(t, newModel(testEntries()), runeKey('n'), runeKey('Y'), runeKey('N'))

	g.Expect(cmd).To(BeNil())
	g.Expect(m.selected).To(Equal([]bool{false, true, false}))
	g.Expect(m.cursor).To(Equal(2), "cursor stays on the last entry")
}

func TestModelNavigationAndToggle(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m, _ := press(t, newModel(testEntries()),
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyDown},
		runeKey('j'),
		tea.KeyMsg{Type: tea.KeySpace},
		runeKey('k'),
	)

	g.Expect(m.cursor).To(Equal(1))
	g.Expect(m.selected).To(Equal([]bool{true, true, false}))
}

func TestModelOnlyConfirmEndsSelection(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m, cmd := press(t, newModel(testEntries()), tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyCtrlC})
	g.Expect(m.done).To(BeFalse())
	g.Expect(cmd).To(BeNil())

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	g.Expect(m.done).To(BeTrue())
	g.Expect(cmd).NotTo(BeNil())
	g.Expect(cmd()).To(Equal(tea.Quit()))
}

func TestModelViewShowsStateAndCursor(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m, _ := press(t, newModel(testEntries()), runeKey('n'))
	view := m.View()

	g.Expect(view).To(ContainSubstring("Found 3 large files"))
	g.Expect(view).To(ContainSubstring("a.sql (2.00MB)"))
	g.Expect(view).To(ContainSubstring("[N]"))
	g.Expect(view).To(ContainSubstring("[Y]"))
	g.Expect(view).To(ContainSubstring("enter done"))
}
