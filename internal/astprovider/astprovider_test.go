package astprovider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyntaxExt(t *testing.T) {
	assert.Equal(t, "js", Js.Ext())
	assert.Equal(t, "ts", Ts.Ext())
}
