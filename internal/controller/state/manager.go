package state

import (
	"sync"
)

// Manager хранит состояние календаря и незавершённые жесты переноса
// по telegramID. Всё состояние живёт в памяти процесса.
type Manager struct {
	mu    sync.RWMutex
	views map[int64]*ViewState
	moves map[int64]*MoveState
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		views: make(map[int64]*ViewState),
		moves: make(map[int64]*MoveState),
	}
}

// View возвращает состояние календаря пользователя (копию)
func (sm *Manager) View(telegramID int64) ViewState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if vs, exists := sm.views[telegramID]; exists {
		return *vs
	}
	return DefaultViewState()
}

// SetWeekOffset устанавливает смещение недели
func (sm *Manager) SetWeekOffset(telegramID int64, offset int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.view(telegramID).WeekOffset = offset
}

// SetStaffFilter устанавливает фильтр по мастеру
func (sm *Manager) SetStaffFilter(telegramID int64, filter string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.view(telegramID).StaffFilter = filter
}

// ResetView возвращает календарь к текущей неделе и фильтру "все мастера"
func (sm *Manager) ResetView(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.views, telegramID)
}

// StartMove начинает жест переноса, затирая незавершённый, если он был
func (sm *Manager) StartMove(telegramID int64, move *MoveState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.moves[telegramID] = move
}

// Move возвращает текущий жест переноса пользователя
func (sm *Manager) Move(telegramID int64) (*MoveState, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	move, exists := sm.moves[telegramID]
	return move, exists
}

// ClearMove завершает жест переноса
func (sm *Manager) ClearMove(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.moves, telegramID)
}

// view возвращает изменяемое состояние, создавая его при необходимости.
// Вызывается только под write-lock.
func (sm *Manager) view(telegramID int64) *ViewState {
	if vs, exists := sm.views[telegramID]; exists {
		return vs
	}
	vs := DefaultViewState()
	sm.views[telegramID] = &vs
	return &vs
}
