package drill

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihongo-drills/katsuyo"
)

var (
	kau = katsuyo.Verb{ID: 2, Class: katsuyo.ConsonantStem, Dictionary: "かう", Gloss: "buy"}
	iku = katsuyo.Verb{ID: 9, Class: katsuyo.ConsonantStem, Dictionary: "行く", Gloss: "go"}

	politeNegativePast = katsuyo.Form{Tense: katsuyo.Past, Register: katsuyo.Polite, Polarity: katsuyo.Negative, Mode: katsuyo.Immediate}
	plainPresent       = katsuyo.Form{Tense: katsuyo.Present, Register: katsuyo.Plain, Polarity: katsuyo.Affirmative, Mode: katsuyo.Immediate}
)

func TestNewChallenge(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := NewChallenge(kau, politeNegativePast, now)
	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, "did not buy (polite)", c.Prompt)
	assert.Equal(t, "かいませんでした", c.Answer)
	assert.Equal(t, now, c.CreatedAt)

	r := RandomChallenge(katsuyo.SampleVerbs(), now)
	assert.Equal(t, r.Verb.Conjugate(r.Form), r.Answer)
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("カイマス", "かいます"))
	assert.True(t, Matches(" ｶｲﾏｽ\n", "かいます"))
	assert.True(t, Matches("うんてん　します", "うんてんします"))
	assert.False(t, Matches("かいます", "かいません"))
}

type failingRecorder struct{}

func (failingRecorder) Record(context.Context, Result, time.Time) error {
	return errors.New("disk full")
}

func TestRegistryCheck(t *testing.T) {
	reg := NewRegistry(katsuyo.SampleVerbs(), 10, nil)
	c := NewChallenge(kau, politeNegativePast, time.Now())
	reg.Add(c)
	assert.Equal(t, 1, reg.Open())

	got, ok := reg.Get(c.ID)
	require.True(t, ok)
	assert.Equal(t, c, got)

	res, err := reg.Check(context.Background(), c.ID, "カイマセンデシタ")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, 0, reg.Open())

	_, err = reg.Check(context.Background(), c.ID, "かいませんでした")
	assert.ErrorIs(t, err, ErrUnknownChallenge)

	c2 := reg.New()
	res, err = reg.Check(context.Background(), c2.ID, "?")
	require.NoError(t, err)
	assert.False(t, res.Correct)

	reg = NewRegistry(nil, 10, failingRecorder{})
	reg.Add(c)
	res, err = reg.Check(context.Background(), c.ID, c.Answer)
	assert.Error(t, err)
	assert.True(t, res.Correct)
}

func TestRegistryEviction(t *testing.T) {
	reg := NewRegistry(nil, 2, nil)
	a := NewChallenge(kau, plainPresent, time.Now())
	b := NewChallenge(iku, plainPresent, time.Now())
	c := NewChallenge(iku, politeNegativePast, time.Now())
	reg.Add(a)
	reg.Add(b)
	reg.Add(c)

	assert.Equal(t, 2, reg.Open())
	_, ok := reg.Get(a.ID)
	assert.False(t, ok)
	_, ok = reg.Get(c.ID)
	assert.True(t, ok)
}

func TestRegistryConcurrent(t *testing.T) {
	reg := NewRegistry(katsuyo.SampleVerbs(), 1000, nil)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				c := reg.New()
				res, err := reg.Check(context.Background(), c.ID, c.Answer)
				assert.NoError(t, err)
				assert.True(t, res.Correct)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, reg.Open())
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	h, err := OpenHistory(ctx, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer h.Close()

	reg := NewRegistry(nil, 10, h)
	c1 := NewChallenge(kau, politeNegativePast, time.Now())
	c2 := NewChallenge(iku, politeNegativePast, time.Now())
	c3 := NewChallenge(iku, plainPresent, time.Now())
	for _, c := range []Challenge{c1, c2, c3} {
		reg.Add(c)
	}
	_, err = reg.Check(ctx, c1.ID, c1.Answer)
	require.NoError(t, err)
	_, err = reg.Check(ctx, c2.ID, "行かなかった")
	require.NoError(t, err)
	_, err = reg.Check(ctx, c3.ID, "行く")
	require.NoError(t, err)

	st, err := h.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Tally{Total: 3, Correct: 2}, st.Tally)
	assert.Equal(t, Tally{Total: 2, Correct: 1}, st.ByForm[politeNegativePast.Name()])
	assert.Equal(t, Tally{Total: 1, Correct: 1}, st.ByForm[plainPresent.Name()])

	recent, err := h.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, c3.ID.String(), recent[0].ChallengeID)
	assert.Equal(t, "9_行く", recent[0].Verb)
	assert.True(t, recent[0].Correct)
	assert.Equal(t, "行かなかった", recent[1].Given)
	assert.Equal(t, "行きませんでした", recent[1].Expected)
	assert.False(t, recent[1].Correct)
}

func TestHistoryInMemory(t *testing.T) {
	h, err := OpenHistory(context.Background(), "")
	require.NoError(t, err)
	defer h.Close()

	st, err := h.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, st.Total)
	assert.Empty(t, st.ByForm)
}
