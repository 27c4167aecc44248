package frame

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go

// UIState answers the per-frame questions about what the host is showing.
// Any true predicate means scroll input belongs to something else and the
// handler stays out of the way.
type UIState interface {
	HasLocalPlayer() bool
	InventoryVisible() bool
	InFreeFly() bool
	MinimapOpen() bool
	PieceSelectionVisible() bool
	StoreVisible() bool
	ConsoleVisible() bool
	ChatFocused() bool
	BarberVisible() bool
	InRadial() bool
}

// Player uses hotbar slots on behalf of the local player.
type Player interface {
	// UseSlot uses the item in the zero-based hotbar slot.
	UseSlot(index int)
}
