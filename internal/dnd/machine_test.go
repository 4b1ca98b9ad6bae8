package dnd

import (
	"errors"
	"testing"
)

func TestReleaseBelowThresholdIsClick(t *testing.T) {
	m := NewMachine(10)

	if err := m.Press(Point{X: 100, Y: 100}, "appt-1"); err != nil {
		t.Fatalf("Press: %v", err)
	}

	// Дрожание руки в пределах порога
	if err := m.Move(Point{X: 103, Y: 104}, &Target{Day: "2025-03-12", Slot: "10:00"}); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if m.State() != StateArmed {
		t.Fatalf("смещение ниже порога не должно начинать перетаскивание, состояние %s", m.State())
	}

	state, target, err := m.Release()
	if err != nil {
		t.Fatalf("Release: %v", err)
	}
	if state != StateClicked {
		t.Errorf("ожидался клик, получено %s", state)
	}
	if target != nil {
		t.Errorf("клик не должен иметь цели, получено %+v", target)
	}
}

func TestDragAndDrop(t *testing.T) {
	m := NewMachine(10)
	over := &Target{Day: "2025-03-13", Slot: "15:00"}

	if err := m.Press(Point{X: 100, Y: 100}, "appt-1"); err != nil {
		t.Fatalf("Press: %v", err)
	}
	if err := m.Move(Point{X: 200, Y: 150}, over); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if m.State() != StateDragging {
		t.Fatalf("смещение выше порога должно начинать перетаскивание, состояние %s", m.State())
	}

	state, target, err := m.Release()
	if err != nil {
		t.Fatalf("Release: %v", err)
	}
	if state != StateDropped {
		t.Errorf("ожидался сброс, получено %s", state)
	}
	if target == nil || target.Day != "2025-03-13" || target.Slot != "15:00" {
		t.Errorf("цель сброса должна быть последней ячейкой под указателем, получено %+v", target)
	}
	if m.Payload() != "appt-1" {
		t.Errorf("payload должен сохраняться до конца жеста, получено %q", m.Payload())
	}
}

func TestReleaseWithoutTargetCancels(t *testing.T) {
	m := NewMachine(10)

	if err := m.Press(Point{X: 0, Y: 0}, "appt-1"); err != nil {
		t.Fatalf("Press: %v", err)
	}
	// Указатель ушёл за порог, но не над ячейкой
	if err := m.Move(Point{X: 50, Y: 50}, nil); err != nil {
		t.Fatalf("Move: %v", err)
	}

	state, target, err := m.Release()
	if err != nil {
		t.Fatalf("Release: %v", err)
	}
	if state != StateCanceled {
		t.Errorf("сброс вне ячейки должен отменять жест, получено %s", state)
	}
	if target != nil {
		t.Errorf("отменённый жест не должен иметь цели")
	}
}

func TestCancel(t *testing.T) {
	m := NewMachine(10)

	m.Cancel() // в Idle — ничего не делает
	if m.State() != StateIdle {
		t.Fatalf("Cancel в Idle не должен менять состояние, получено %s", m.State())
	}

	if err := m.Press(Point{X: 0, Y: 0}, "appt-1"); err != nil {
		t.Fatalf("Press: %v", err)
	}
	m.Cancel()
	if m.State() != StateCanceled {
		t.Errorf("Cancel должен переводить жест в отменённое состояние, получено %s", m.State())
	}
	if !m.Done() {
		t.Error("отменённый жест должен быть терминальным")
	}
}

func TestGestureErrors(t *testing.T) {
	m := NewMachine(10)

	if err := m.Move(Point{X: 1, Y: 1}, nil); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Move до Press: ожидалась ErrNotStarted, получено %v", err)
	}
	if _, _, err := m.Release(); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Release до Press: ожидалась ErrNotStarted, получено %v", err)
	}

	if err := m.Press(Point{X: 0, Y: 0}, "appt-1"); err != nil {
		t.Fatalf("Press: %v", err)
	}
	if err := m.Press(Point{X: 0, Y: 0}, "appt-2"); !errors.Is(err, ErrNotIdle) {
		t.Errorf("повторный Press: ожидалась ErrNotIdle, получено %v", err)
	}

	if _, _, err := m.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := m.Move(Point{X: 1, Y: 1}, nil); !errors.Is(err, ErrGestureDone) {
		t.Errorf("Move после завершения: ожидалась ErrGestureDone, получено %v", err)
	}
	if _, _, err := m.Release(); !errors.Is(err, ErrGestureDone) {
		t.Errorf("повторный Release: ожидалась ErrGestureDone, получено %v", err)
	}
}

func TestNewMachineDefaultThreshold(t *testing.T) {
	m := NewMachine(0)

	if err := m.Press(Point{X: 0, Y: 0}, "appt-1"); err != nil {
		t.Fatalf("Press: %v", err)
	}
	// 9 пикселей — меньше порога по умолчанию
	if err := m.Move(Point{X: 9, Y: 0}, nil); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if m.State() != StateArmed {
		t.Errorf("при нулевом пороге должен использоваться порог по умолчанию, состояние %s", m.State())
	}
	if err := m.Move(Point{X: 10, Y: 0}, nil); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if m.State() != StateDragging {
		t.Errorf("смещение на пороге должно начинать перетаскивание, состояние %s", m.State())
	}
}
