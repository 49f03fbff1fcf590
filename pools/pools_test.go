package pools_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelhq/distill/pools"
)

func TestGetReturnsUsableBuilder(t *testing.T) {
	p := pools.NewStringBuilderPool()
	sb := p.Get()
	sb.WriteString("hello")
	assert.Equal(t, "hello", sb.String())
}

func TestPutResetsBuilderBeforeReuse(t *testing.T) {
	p := pools.NewStringBuilderPool()
	sb := p.Get()
	sb.WriteString("leftover content")
	p.Put(sb)

	reused := p.Get()
	assert.Equal(t, "", reused.String())
}

func TestPutIgnoresNil(t *testing.T) {
	p := pools.NewStringBuilderPool()
	assert.NotPanics(t, func() { p.Put(nil) })
}

func TestPutDropsOversizedBuilder(t *testing.T) {
	p := pools.NewStringBuilderPool()
	sb := p.Get()
	sb.WriteString(strings.Repeat("x", 100*1024))
	assert.NotPanics(t, func() { p.Put(sb) })
}

func TestGlobalStringBuildersIsUsable(t *testing.T) {
	sb := pools.GlobalStringBuilders.Get()
	sb.WriteString("test")
	assert.Equal(t, "test", sb.String())
	pools.GlobalStringBuilders.Put(sb)
}
