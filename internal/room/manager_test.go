package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whiteboard/internal/user"
)

func newManagerForTest() *Manager {
	return NewManager(10, 10)
}

func TestJoinCreatesRoom(t *testing.T) {
	m := newManagerForTest()
	u := user.New("u1", nil, nil)

	rm, err := m.Join("ab12cd", u)
	require.NoError(t, err)

	assert.Equal(t, "AB12CD", rm.Code)
	assert.Equal(t, 1, m.RoomCount())
	assert.Equal(t, 1, rm.MemberCount())
}

func TestJoinCodesAreCaseInsensitive(t *testing.T) {
	m := newManagerForTest()

	rm1, err := m.Join("ab12cd", user.New("u1", nil, nil))
	require.NoError(t, err)
	rm2, err := m.Join("AB12CD", user.New("u2", nil, nil))
	require.NoError(t, err)

	assert.Same(t, rm1, rm2, "both codes should resolve to the same room")
	assert.Equal(t, 1, m.RoomCount())
	assert.Equal(t, 2, rm1.MemberCount())
}

func TestJoinRejectsEmptyCode(t *testing.T) {
	m := newManagerForTest()

	_, err := m.Join("   ", user.New("u1", nil, nil))
	assert.ErrorIs(t, err, ErrCodeMissing)
}

func TestJoinRejectsDoubleJoin(t *testing.T) {
	m := newManagerForTest()
	u := user.New("u1", nil, nil)

	_, err := m.Join("AB12CD", u)
	require.NoError(t, err)

	_, err = m.Join("ZZ99ZZ", u)
	assert.ErrorIs(t, err, ErrAlreadyMember)
	assert.Equal(t, 1, m.RoomCount(), "failed join must not create a room")
}

func TestJoinFullRoom(t *testing.T) {
	m := NewManager(10, 1)

	_, err := m.Join("AB12CD", user.New("u1", nil, nil))
	require.NoError(t, err)

	_, err = m.Join("AB12CD", user.New("u2", nil, nil))
	assert.ErrorIs(t, err, ErrRoomFull)
}

func TestJoinAtRoomCapacity(t *testing.T) {
	m := NewManager(1, 10)

	_, err := m.Join("AB12CD", user.New("u1", nil, nil))
	require.NoError(t, err)

	_, err = m.Join("ZZ99ZZ", user.New("u2", nil, nil))
	assert.ErrorIs(t, err, ErrServerFull)
}

func TestFailedFirstJoinLeavesNoRoomBehind(t *testing.T) {
	m := NewManager(10, 0)

	_, err := m.Join("AB12CD", user.New("u1", nil, nil))
	assert.ErrorIs(t, err, ErrRoomFull)
	assert.Equal(t, 0, m.RoomCount())
}

func TestLeaveIsIdempotent(t *testing.T) {
	m := newManagerForTest()

	// u never joined; must be a no-op, not an error
	m.Leave(user.New("ghost", nil, nil))
	assert.Equal(t, 0, m.RoomCount())
}

func TestLeaveDestroysEmptyRoomAndDiscardsSnapshot(t *testing.T) {
	m := newManagerForTest()
	u := user.New("u1", nil, nil)

	_, err := m.Join("AB12CD", u)
	require.NoError(t, err)
	require.NoError(t, m.SubmitSnapshot("AB12CD", "data:image/png;base64,AAAA"))

	m.Leave(u)
	assert.Equal(t, 0, m.RoomCount())

	// recreating the room must start without a snapshot
	_, err = m.Join("AB12CD", user.New("u2", nil, nil))
	require.NoError(t, err)

	snapshot, ok, err := m.FetchSnapshot("AB12CD")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, snapshot)
}

func TestSubmitSnapshotUnknownRoom(t *testing.T) {
	m := newManagerForTest()

	err := m.SubmitSnapshot("NOSUCH", "data:image/png;base64,AAAA")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestFetchSnapshotUnknownRoom(t *testing.T) {
	m := newManagerForTest()

	_, _, err := m.FetchSnapshot("NOSUCH")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestSnapshotLastSubmissionWins(t *testing.T) {
	m := newManagerForTest()
	_, err := m.Join("AB12CD", user.New("u1", nil, nil))
	require.NoError(t, err)

	require.NoError(t, m.SubmitSnapshot("AB12CD", "data:image/png;base64,FIRST"))
	require.NoError(t, m.SubmitSnapshot("ab12cd", "data:image/png;base64,SECOND"))

	snapshot, ok, err := m.FetchSnapshot("AB12CD")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "data:image/png;base64,SECOND", snapshot)
}
