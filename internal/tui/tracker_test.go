package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lifetrack/internal/models"
	"lifetrack/internal/timeutil"
)

func trackerTasks() []models.LifeTask {
	return []models.LifeTask{
		{ID: "t1", Name: "Read", Category: "Learning", TargetValue: 50},
		{ID: "t2", Name: "Run", Category: "Health", TargetValue: 100},
	}
}

// settleTracker drives the model through the task fetch and the
// today's-values fan-out, like the event loop would.
func settleTracker(t *testing.T, svc *mockService) TrackerModel {
	t.Helper()
	m := NewTrackerModel(svc)
	msgs := runCmd(t, m.Init())
	for len(msgs) > 0 {
		var next []tea.Msg
		for _, msg := range msgs {
			var cmd tea.Cmd
			m, cmd = m.Update(msg)
			next = append(next, runCmd(t, cmd)...)
		}
		msgs = next
	}
	return m
}

func TestTrackerLoadsTodayValuePerTask(t *testing.T) {
	svc := newMockService()
	svc.tasks = trackerTasks()
	svc.history["t1"] = []models.ProgressEntry{
		{TaskID: "t1", Date: "2001-01-01", ProgressValue: 7},
		{TaskID: "t1", Date: timeutil.Today(), ProgressValue: 30},
	}

	m := settleTracker(t, svc)

	if m.loading || m.valuesLoading {
		t.Fatalf("expected loading to finish")
	}
	if svc.callCount("ProgressHistory") != len(svc.tasks) {
		t.Fatalf("expected one history fetch per task, got %d", svc.callCount("ProgressHistory"))
	}
	if got := m.values["t1"]; got.Value != 30 || got.Failed {
		t.Fatalf("expected today's value 30 for t1, got %+v", got)
	}
	if got := m.values["t2"]; got.Value != 0 || got.Failed {
		t.Fatalf("expected a genuine zero for t2, got %+v", got)
	}
}

func TestTrackerFailedFetchIsNotAZero(t *testing.T) {
	svc := newMockService()
	svc.tasks = trackerTasks()
	svc.historyErrs["t2"] = errors.New("timeout")

	m := settleTracker(t, svc)

	if got := m.values["t2"]; !got.Failed {
		t.Fatalf("expected an explicit failure marker, got %+v", got)
	}
	if got := m.values["t1"]; got.Failed {
		t.Fatalf("t1 fetched fine, must not be marked failed")
	}

	out := m.View()
	if !strings.Contains(out, "unavailable") {
		t.Fatalf("expected the failed task to render as unavailable")
	}
	if !strings.Contains(out, "0/50 (0%)") {
		t.Fatalf("expected the healthy task to render its zero normally")
	}
}

func TestTrackerRowRendersValueAndPercent(t *testing.T) {
	svc := newMockService()
	svc.tasks = trackerTasks()
	svc.history["t1"] = []models.ProgressEntry{{TaskID: "t1", Date: timeutil.Today(), ProgressValue: 30}}

	m := settleTracker(t, svc)
	if !strings.Contains(m.View(), "30/50 (60%)") {
		t.Fatalf("expected 30/50 (60%%) in output")
	}
}

func TestTrackerSliderCommitsOptimistically(t *testing.T) {
	svc := newMockService()
	svc.tasks = trackerTasks()
	svc.history["t1"] = []models.ProgressEntry{{TaskID: "t1", Date: timeutil.Today(), ProgressValue: 30}}

	m := settleTracker(t, svc)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})

	if got := m.values["t1"].Value; got != 31 {
		t.Fatalf("expected the bar to move before the save lands, got %d", got)
	}
	msgs := runCmd(t, cmd)
	saved := msgs[0].(progressSavedMsg)
	if saved.value != 31 || saved.prev != 30 {
		t.Fatalf("expected save of 31 with rollback value 30, got %+v", saved)
	}
	if len(svc.saved) != 1 || svc.saved[0].ProgressValue != 31 || svc.saved[0].Date != timeutil.Today() {
		t.Fatalf("expected today's value 31 persisted, got %+v", svc.saved)
	}
}

func TestTrackerSliderBigStepAndClamp(t *testing.T) {
	svc := newMockService()
	svc.tasks = trackerTasks()
	svc.history["t1"] = []models.ProgressEntry{{TaskID: "t1", Date: timeutil.Today(), ProgressValue: 45}}

	m := settleTracker(t, svc)

	m, _ = m.Update(keyRunes("L"))
	if got := m.values["t1"].Value; got != 50 {
		t.Fatalf("expected clamp at target 50, got %d", got)
	}

	// Already at the ceiling: another push is a no-op, no save issued.
	before := len(svc.saved)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if cmd != nil || len(svc.saved) != before {
		t.Fatalf("expected no save at the ceiling")
	}

	m.values["t1"] = models.TaskProgress{Value: 3}
	m, _ = m.Update(keyRunes("H"))
	if got := m.values["t1"].Value; got != 0 {
		t.Fatalf("expected clamp at zero, got %d", got)
	}
}

func TestTrackerSliderRollsBackOnSaveFailure(t *testing.T) {
	svc := newMockService()
	svc.tasks = trackerTasks()
	svc.history["t1"] = []models.ProgressEntry{{TaskID: "t1", Date: timeutil.Today(), ProgressValue: 30}}

	m := settleTracker(t, svc)
	svc.saveErr = errors.New("500")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	msgs := runCmd(t, cmd)
	m, _ = m.Update(msgs[0])

	if got := m.values["t1"]; got.Value != 30 || got.Failed {
		t.Fatalf("expected rollback to 30, got %+v", got)
	}
	if !m.statusIsErr {
		t.Fatalf("expected an error status after rollback")
	}
}

func TestTrackerSliderRestoresFailureMarkerOnRollback(t *testing.T) {
	svc := newMockService()
	svc.tasks = trackerTasks()
	svc.historyErrs["t1"] = errors.New("timeout")

	m := settleTracker(t, svc)
	svc.saveErr = errors.New("500")

	// Adjusting a failed-fetch task starts from zero and commits that.
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	msgs := runCmd(t, cmd)
	m, _ = m.Update(msgs[0])

	if got := m.values["t1"]; !got.Failed {
		t.Fatalf("rollback must restore the failure marker, got %+v", got)
	}
}

func TestTrackerCursorMovement(t *testing.T) {
	svc := newMockService()
	svc.tasks = trackerTasks()
	m := settleTracker(t, svc)

	m, _ = m.Update(keyRunes("j"))
	if m.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.cursor)
	}
	m, _ = m.Update(keyRunes("j"))
	if m.cursor != 1 {
		t.Fatalf("cursor must stop at the last task")
	}
	m, _ = m.Update(keyRunes("k"))
	if m.cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", m.cursor)
	}
}

func TestTrackerCreateRequiresName(t *testing.T) {
	svc := newMockService()
	m := settleTracker(t, svc)

	m, _ = m.Update(keyRunes("n"))
	if m.mode != trackerForm || !m.InInputMode() {
		t.Fatalf("expected the task form to open")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || !m.statusIsErr {
		t.Fatalf("expected a validation error for a missing name")
	}
	if m.mode != trackerForm {
		t.Fatalf("the form must stay open after a validation error")
	}
	if svc.callCount("CreateLifeTask") != 0 {
		t.Fatalf("expected no create call")
	}
}

func TestTrackerCreateAppliesDefaults(t *testing.T) {
	svc := newMockService()
	m := settleTracker(t, svc)

	m, _ = m.Update(keyRunes("n"))
	m.form.name.SetValue("Meditate")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runCmd(t, cmd)

	if svc.callCount("CreateLifeTask") != 1 {
		t.Fatalf("expected one create call")
	}
	in := svc.taskInputs[0]
	if in.Name != "Meditate" || in.Category != "General" || in.TargetValue != 100 {
		t.Fatalf("expected defaults applied, got %+v", in)
	}
	if m.mode != trackerBrowsing {
		t.Fatalf("expected the form to close on submit")
	}
}

func TestTrackerCreateRejectsBadTarget(t *testing.T) {
	svc := newMockService()
	m := settleTracker(t, svc)

	m, _ = m.Update(keyRunes("n"))
	m.form.name.SetValue("Stretch")
	for _, raw := range []string{"abc", "0", "-5"} {
		m.form.target.SetValue(raw)
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if cmd != nil || !m.statusIsErr {
			t.Fatalf("expected target %q to be rejected", raw)
		}
	}
}

func TestTrackerEditPrefillsForm(t *testing.T) {
	svc := newMockService()
	svc.tasks = trackerTasks()
	m := settleTracker(t, svc)

	m, _ = m.Update(keyRunes("e"))
	if m.mode != trackerForm || m.form.editingID != "t1" {
		t.Fatalf("expected the form to edit t1")
	}
	if m.form.name.Value() != "Read" || m.form.target.Value() != "50" {
		t.Fatalf("expected prefilled fields, got %q / %q", m.form.name.Value(), m.form.target.Value())
	}
	if got := m.form.categoryIdx; got == 0 {
		t.Fatalf("expected the Learning category to be selected")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	runCmd(t, cmd)
	if svc.callCount("UpdateLifeTask") != 1 {
		t.Fatalf("expected an update, not a create")
	}
}

func TestTrackerFormCategoryCycles(t *testing.T) {
	m := settleTracker(t, newMockService())
	m, _ = m.Update(keyRunes("n"))
	m.form.focus = 2
	m.syncFormFocus()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.form.categoryIdx == 0 {
		t.Fatalf("expected left to wrap to the last category")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.form.categoryIdx != 0 {
		t.Fatalf("expected right to wrap back, got %d", m.form.categoryIdx)
	}
}

func TestTrackerDeleteNeedsConfirmation(t *testing.T) {
	svc := newMockService()
	svc.tasks = trackerTasks()
	m := settleTracker(t, svc)

	m, _ = m.Update(keyRunes("d"))
	if m.mode != trackerConfirmDelete {
		t.Fatalf("expected a confirmation prompt")
	}

	m, _ = m.Update(keyRunes("n"))
	if m.mode != trackerBrowsing || svc.callCount("DeleteLifeTask") != 0 {
		t.Fatalf("'n' must cancel without deleting")
	}

	m, _ = m.Update(keyRunes("d"))
	m, cmd := m.Update(keyRunes("y"))
	msgs := runCmd(t, cmd)
	if svc.callCount("DeleteLifeTask") != 1 {
		t.Fatalf("expected one delete call")
	}

	m, cmd = m.Update(msgs[0])
	if !m.loading || cmd == nil {
		t.Fatalf("expected a refresh after the delete")
	}
}

func TestTrackerMutationErrorLeavesListAlone(t *testing.T) {
	svc := newMockService()
	svc.tasks = trackerTasks()
	m := settleTracker(t, svc)

	m, cmd := m.Update(taskMutatedMsg{action: "create", err: errors.New("400")})
	if cmd != nil || !m.statusIsErr {
		t.Fatalf("expected an error status and no refresh")
	}
	if len(m.tasks) != 2 {
		t.Fatalf("expected the list untouched")
	}
}

func TestTrackerDropsStaleResponses(t *testing.T) {
	svc := newMockService()
	svc.tasks = trackerTasks()
	m := settleTracker(t, svc)

	m, _ = m.Update(tasksLoadedMsg{seq: m.seq - 1, tasks: nil})
	if len(m.tasks) != 2 {
		t.Fatalf("a stale task list must be dropped")
	}

	m, _ = m.Update(todayProgressMsg{seq: m.seq - 1, values: map[string]models.TaskProgress{"t1": {Value: 99}}})
	if m.values["t1"].Value == 99 {
		t.Fatalf("stale values must be dropped")
	}
}

func TestTrackerEmptyStateRender(t *testing.T) {
	m := settleTracker(t, newMockService())
	if !strings.Contains(m.View(), "No life tasks yet") {
		t.Fatalf("expected the empty-state hint")
	}
}
