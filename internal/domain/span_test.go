package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	t.Run("detached when missing", func(t *testing.T) {
		profile, end := GetProfile(context.Background())
		require.NotNil(t, profile)
		profile.StartNewSpan("load")
		end()
		require.NotNil(t, profile.TotalMs)
	})

	t.Run("spans recorded on attached profile", func(t *testing.T) {
		profile, _ := NewProfile()
		ctx := WithProfile(context.Background(), profile)

		p, end := GetProfile(ctx)
		p.StartNewSpan("load transactions")
		p.StartNewSpan("replay")
		end()

		require.Len(t, profile.Spans, 2)
		require.NotNil(t, profile.Spans[0].Elapsed)
		require.NotNil(t, profile.Spans[1].Elapsed)

		b, err := profile.ToJsonBytes()
		require.NoError(t, err)
		require.Contains(t, string(b), `"name":"replay"`)
	})
}
