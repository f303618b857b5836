package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/odvcencio/tabpanel/pkg/ui/runtime"
)

func TestAlign_GetOffset(t *testing.T) {
	tests := []struct {
		name      string
		align     Align
		content   int
		container int
		want      int
	}{
		{"start", AlignStart, 4, 10, 0},
		{"center even", AlignCenter, 4, 10, 3},
		{"center odd", AlignCenter, 4, 9, 2},
		{"end", AlignEnd, 4, 10, 6},
		{"exact fit", AlignEnd, 10, 10, 0},
		{"overflow center", AlignCenter, 12, 10, 0},
		{"overflow end", AlignEnd, 12, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.align.GetOffset(tt.content, tt.container))
		})
	}
}

func TestAlign_OffsetLaws(t *testing.T) {
	for container := 0; container <= 24; container++ {
		for content := 0; content <= 24; content++ {
			for _, a := range []Align{AlignStart, AlignCenter, AlignEnd} {
				off := a.GetOffset(content, container)
				if container < content {
					assert.Zero(t, off, "%s %d/%d", a, content, container)
					continue
				}
				assert.GreaterOrEqual(t, off, 0)
				switch a {
				case AlignCenter:
					assert.Contains(t, []int{container - 1, container}, off+content+off, "%d/%d", content, container)
				case AlignEnd:
					assert.Equal(t, container, off+content)
				}
			}
		}
	}
}

func TestPlacement_Text(t *testing.T) {
	var cfg struct {
		Placement Placement `yaml:"placement"`
		Alignment Align     `yaml:"alignment"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("placement: left\nalignment: End\n"), &cfg))
	assert.Equal(t, VerticalLeft, cfg.Placement)
	assert.Equal(t, AlignEnd, cfg.Alignment)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	assert.Equal(t, "placement: left\nalignment: end\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("placement: middle\n"), &cfg))
	assert.Error(t, yaml.Unmarshal([]byte("alignment: justify\n"), &cfg))

	_, err = Placement(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "placement(9)", Placement(9).String())
}

func TestPlacement_Next(t *testing.T) {
	p := HorizontalTop
	seen := map[Placement]bool{}
	for i := 0; i < 4; i++ {
		seen[p] = true
		p = p.Next()
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, HorizontalTop, p)
	assert.Equal(t, AlignStart, AlignEnd.Next())
}

func TestPlacement_Sides(t *testing.T) {
	tests := []struct {
		p           Placement
		bar, oppose runtime.Direction
		horizontal  bool
	}{
		{HorizontalTop, runtime.DirUp, runtime.DirDown, true},
		{HorizontalBottom, runtime.DirDown, runtime.DirUp, true},
		{VerticalLeft, runtime.DirLeft, runtime.DirRight, false},
		{VerticalRight, runtime.DirRight, runtime.DirLeft, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.bar, tt.p.barSide(), tt.p.String())
		assert.Equal(t, tt.oppose, tt.p.contentSide(), tt.p.String())
		assert.Equal(t, tt.horizontal, tt.p.IsHorizontal(), tt.p.String())
	}
}
