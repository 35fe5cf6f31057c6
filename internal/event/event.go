package event

// Wire message type discriminators. Names match the original client protocol.
const (
	TypeDraw           = "draw"
	TypeClearCanvas    = "clear-canvas"
	TypeSaveSnapshot   = "save-snapshot"
	TypeCursor         = "cursor"
	TypeRoomJoined     = "room-joined"
	TypeSnapshotLoaded = "snapshot-loaded"
	TypeUsersCount     = "users-count"
)

// Tool kinds for draw events
const (
	ToolPen    = "pen"
	ToolEraser = "eraser"
)

// Envelope: minimal decode of any incoming message to find its type
type Envelope struct {
	Type string `json:"type"`
}

// Draw: one incremental stroke segment. Coordinates are not range-checked;
// the relay is a pure fan-out and geometry is the client's concern.
type Draw struct {
	Type      string  `json:"type"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	PrevX     float64 `json:"prevX"`
	PrevY     float64 `json:"prevY"`
	Color     string  `json:"color" validate:"required,max=50"`
	LineWidth float64 `json:"lineWidth" validate:"gte=1,lte=100"`
	Tool      string  `json:"tool" validate:"required,oneof=pen eraser"`
	UserID    string  `json:"userId,omitempty"`
}

// Clear: resets the room canvas. Echoed to every member, sender included.
type Clear struct {
	Type   string `json:"type"`
	UserID string `json:"userId,omitempty"`
}

// SaveSnapshot: full-raster checkpoint submission (canvas data URL)
type SaveSnapshot struct {
	Type     string `json:"type"`
	Snapshot string `json:"snapshot" validate:"required,startswith=data:image/"`
}

// Cursor: live pointer position
type Cursor struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Color  string  `json:"color,omitempty"`
	UserID string  `json:"userId,omitempty"`
}

// RoomJoined: join acknowledgment with the server-assigned identity
type RoomJoined struct {
	Type   string `json:"type"`
	Room   string `json:"room"`
	UserID string `json:"userId"`
	Color  string `json:"color"`
}

// SnapshotLoaded: initial canvas state for a joiner. An empty Snapshot
// string means no checkpoint has been submitted yet.
type SnapshotLoaded struct {
	Type     string `json:"type"`
	Snapshot string `json:"snapshot"`
}

// UsersCount: current room membership
type UsersCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}
