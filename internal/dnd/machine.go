// Package dnd реализует явный конечный автомат жеста drag-and-drop.
// Перенос карточки записи в интерфейсе проходит через него: жест короче
// порога активации остаётся кликом, жест длиннее — перетаскиванием.
package dnd

import (
	"errors"
	"math"
)

type State string

const (
	StateIdle     State = "idle"
	StateArmed    State = "armed"    // кнопка нажата, порог ещё не пройден
	StateDragging State = "dragging" // порог пройден, идёт перетаскивание

	// Терминальные состояния
	StateClicked  State = "clicked"  // отпущено без сдвига — это клик
	StateDropped  State = "dropped"  // отпущено над валидной ячейкой
	StateCanceled State = "canceled" // жест отменён или цель невалидна
)

// DefaultActivationDistance — минимальное смещение, после которого жест
// считается перетаскиванием, а не кликом
const DefaultActivationDistance = 10.0

var (
	ErrNotIdle     = errors.New("gesture already in progress")
	ErrNotStarted  = errors.New("gesture not started")
	ErrGestureDone = errors.New("gesture already finished")
)

// Point — позиция указателя в координатах сетки
type Point struct {
	X float64
	Y float64
}

func (p Point) distanceTo(other Point) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Target — ячейка (день, слот), над которой находится указатель
type Target struct {
	Day  string // "2006-01-02"
	Slot string // "HH:MM"
}

// Machine — автомат одного жеста:
// Idle -> Armed -> Dragging -> {Dropped | Canceled}, либо Armed -> Clicked.
// Потребитель наблюдает только терминальные состояния.
type Machine struct {
	state              State
	activationDistance float64

	pressedAt Point
	payload   string // ID перетаскиваемой записи
	over      *Target
}

// NewMachine создаёт автомат с заданным порогом активации.
// Неположительный порог заменяется на DefaultActivationDistance.
func NewMachine(activationDistance float64) *Machine {
	if activationDistance <= 0 {
		activationDistance = DefaultActivationDistance
	}
	return &Machine{
		state:              StateIdle,
		activationDistance: activationDistance,
	}
}

func (m *Machine) State() State {
	return m.state
}

// Payload возвращает ID записи, с которой начался жест
func (m *Machine) Payload() string {
	return m.payload
}

// Done сообщает, достиг ли автомат терминального состояния
func (m *Machine) Done() bool {
	switch m.state {
	case StateClicked, StateDropped, StateCanceled:
		return true
	}
	return false
}

// Press начинает жест на карточке записи
func (m *Machine) Press(at Point, payload string) error {
	if m.state != StateIdle {
		return ErrNotIdle
	}
	m.state = StateArmed
	m.pressedAt = at
	m.payload = payload
	m.over = nil
	return nil
}

// Move сообщает о смещении указателя. Пока суммарное смещение от точки
// нажатия меньше порога, жест остаётся кликом.
func (m *Machine) Move(to Point, over *Target) error {
	switch m.state {
	case StateIdle:
		return ErrNotStarted
	case StateClicked, StateDropped, StateCanceled:
		return ErrGestureDone
	}

	if m.state == StateArmed && m.pressedAt.distanceTo(to) < m.activationDistance {
		return nil
	}

	m.state = StateDragging
	m.over = over
	return nil
}

// Release завершает жест. Из Armed жест завершается кликом, из Dragging —
// сбросом на текущую ячейку либо отменой, если цели нет.
func (m *Machine) Release() (State, *Target, error) {
	switch m.state {
	case StateIdle:
		return m.state, nil, ErrNotStarted
	case StateClicked, StateDropped, StateCanceled:
		return m.state, nil, ErrGestureDone
	case StateArmed:
		m.state = StateClicked
		return m.state, nil, nil
	}

	if m.over == nil {
		m.state = StateCanceled
		return m.state, nil, nil
	}

	m.state = StateDropped
	return m.state, m.over, nil
}

// Cancel прерывает жест из любого нетерминального состояния
func (m *Machine) Cancel() {
	if m.state == StateIdle || m.Done() {
		return
	}
	m.state = StateCanceled
}
