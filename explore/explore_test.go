package explore_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sleuth/explore"
	"github.com/katalvlaran/sleuth/ledger"
	"github.com/katalvlaran/sleuth/mansion"
)

// hallway builds a three-room fixture: Entrada → (Salão | Cozinha).
// Entrada and Salão bear clues, Cozinha is bare.
func hallway(t *testing.T) (*mansion.Mansion, explore.ClueFunc) {
	t.Helper()
	m, err := mansion.Build(mansion.Blueprint{
		Start: "Entrada",
		Rooms: []mansion.RoomSpec{
			{Name: "Entrada", Left: "Salão", Right: "Cozinha"},
			{Name: "Salão"},
			{Name: "Cozinha"},
		},
	})
	if err != nil {
		t.Fatalf("fixture mansion: %v", err)
	}
	clues := map[string]string{
		"Entrada": "Pegadas lamacentas",
		"Salão":   "Retrato rasgado",
	}
	clueAt := func(room string) (string, bool) {
		c, ok := clues[room]

		return c, ok
	}

	return m, clueAt
}

// transcript records hook firings in order, one compact token each.
type transcript struct {
	events []string
}

func (tr *transcript) add(ev string) { tr.events = append(tr.events, ev) }

func (tr *transcript) options() []explore.Option {
	return []explore.Option{
		explore.WithOnEnter(func(r *mansion.Room) { tr.add("enter:" + r.Name()) }),
		explore.WithOnClue(func(_ *mansion.Room, clue string, recorded bool) {
			tr.add(fmt.Sprintf("clue:%s:%v", clue, recorded))
		}),
		explore.WithOnNoClue(func(r *mansion.Room) { tr.add("noclue:" + r.Name()) }),
		explore.WithOnBlocked(func(r *mansion.Room, dir explore.Command) {
			tr.add("blocked:" + r.Name() + ":" + dir.String())
		}),
		explore.WithOnUnknown(func(r *mansion.Room) { tr.add("unknown:" + r.Name()) }),
		explore.WithOnStop(func(r *mansion.Room) { tr.add("stop:" + r.Name()) }),
	}
}

func TestNew_NilCollaborators(t *testing.T) {
	m, clueAt := hallway(t)
	led := ledger.New()

	_, err := explore.New(nil, led, clueAt)
	assert.ErrorIs(t, err, explore.ErrMansionNil)

	_, err = explore.New(m, nil, clueAt)
	assert.ErrorIs(t, err, explore.ErrLedgerNil)

	_, err = explore.New(m, led, nil)
	assert.ErrorIs(t, err, explore.ErrClueFuncNil)
}

func TestEngine_StepBeforeStart(t *testing.T) {
	m, clueAt := hallway(t)
	eng, err := explore.New(m, ledger.New(), clueAt)
	assert.NoError(t, err)

	assert.ErrorIs(t, eng.Step(explore.Left), explore.ErrNotStarted)
	assert.False(t, eng.Started())
}

func TestEngine_StartVisitsEntranceOnce(t *testing.T) {
	m, clueAt := hallway(t)
	led := ledger.New()
	tr := &transcript{}
	eng, err := explore.New(m, led, clueAt, tr.options()...)
	assert.NoError(t, err)

	eng.Start()
	eng.Start() // idempotent

	assert.Equal(t, []string{
		"enter:Entrada",
		"clue:Pegadas lamacentas:true",
	}, tr.events)
	assert.True(t, eng.Started())
	assert.Equal(t, 1, led.Len())
}

func TestEngine_MoveCollectsClues(t *testing.T) {
	m, clueAt := hallway(t)
	led := ledger.New()
	tr := &transcript{}
	eng, err := explore.New(m, led, clueAt, tr.options()...)
	assert.NoError(t, err)

	eng.Start()
	assert.NoError(t, eng.Step(explore.Left))

	assert.Equal(t, "Salão", eng.Current().Name())
	assert.Equal(t, []string{
		"enter:Entrada",
		"clue:Pegadas lamacentas:true",
		"enter:Salão",
		"clue:Retrato rasgado:true",
	}, tr.events)
	assert.Equal(t, []string{"Pegadas lamacentas", "Retrato rasgado"}, led.InOrder())
}

func TestEngine_BareRoomFiresNoClue(t *testing.T) {
	m, clueAt := hallway(t)
	tr := &transcript{}
	eng, err := explore.New(m, ledger.New(), clueAt, tr.options()...)
	assert.NoError(t, err)

	eng.Start()
	assert.NoError(t, eng.Step(explore.Right))

	assert.Equal(t, "noclue:Cozinha", tr.events[len(tr.events)-1])
}

func TestEngine_BlockedReannouncesRoomAndClue(t *testing.T) {
	m, clueAt := hallway(t)
	led := ledger.New()
	tr := &transcript{}
	eng, err := explore.New(m, led, clueAt, tr.options()...)
	assert.NoError(t, err)

	eng.Start()
	assert.NoError(t, eng.Step(explore.Left)) // into Salão, a leaf
	assert.NoError(t, eng.Step(explore.Left)) // no door

	assert.Equal(t, "Salão", eng.Current().Name(), "blocked move must not change position")
	assert.Equal(t, []string{
		"blocked:Salão:left",
		"enter:Salão",
		"clue:Retrato rasgado:false", // re-announced, not re-recorded
	}, tr.events[len(tr.events)-3:])
	assert.Equal(t, 1, led.Len(), "re-visit must not duplicate the clue")
	assert.False(t, eng.Finished(), "a dead end must not end the visit")
}

func TestEngine_UnknownReannounces(t *testing.T) {
	m, clueAt := hallway(t)
	tr := &transcript{}
	eng, err := explore.New(m, ledger.New(), clueAt, tr.options()...)
	assert.NoError(t, err)

	eng.Start()
	assert.NoError(t, eng.Step(explore.Unknown))

	assert.Equal(t, []string{
		"unknown:Entrada",
		"enter:Entrada",
		"clue:Pegadas lamacentas:false",
	}, tr.events[len(tr.events)-3:])
}

func TestEngine_StopFinishes(t *testing.T) {
	m, clueAt := hallway(t)
	tr := &transcript{}
	eng, err := explore.New(m, ledger.New(), clueAt, tr.options()...)
	assert.NoError(t, err)

	eng.Start()
	assert.NoError(t, eng.Step(explore.Stop))

	assert.True(t, eng.Finished())
	assert.Equal(t, "stop:Entrada", tr.events[len(tr.events)-1])
	assert.ErrorIs(t, eng.Step(explore.Left), explore.ErrFinished)
}

func TestEngine_LeafNeverAutoFinishes(t *testing.T) {
	m, clueAt := hallway(t)
	eng, err := explore.New(m, ledger.New(), clueAt)
	assert.NoError(t, err)

	eng.Start()
	assert.NoError(t, eng.Step(explore.Right)) // Cozinha, a leaf
	assert.False(t, eng.Finished())
	assert.NoError(t, eng.Step(explore.Right)) // blocked, still alive
	assert.False(t, eng.Finished())
}

func TestParseCommand(t *testing.T) {
	cases := []struct {
		in   string
		want explore.Command
	}{
		{"e", explore.Left},
		{"E", explore.Left},
		{"esquerda", explore.Left},
		{"d", explore.Right},
		{"D", explore.Right},
		{"direita", explore.Right},
		{"s", explore.Stop},
		{"S", explore.Stop},
		{"sair", explore.Stop},
		{"  e  ", explore.Left},
		{"x", explore.Unknown},
		{"42", explore.Unknown},
		{"", explore.Unknown},
		{"   ", explore.Unknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, explore.ParseCommand(tc.in), "input %q", tc.in)
	}
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "left", explore.Left.String())
	assert.Equal(t, "right", explore.Right.String())
	assert.Equal(t, "stop", explore.Stop.String())
	assert.Equal(t, "unknown", explore.Unknown.String())
	assert.Equal(t, "unknown", explore.Command(99).String())
}
