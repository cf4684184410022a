package readlog_test

import (
	"testing"

	"github.com/fwojciec/readlog"
	"github.com/stretchr/testify/assert"
)

func TestMetadata_HasAuthor(t *testing.T) {
	t.Parallel()

	assert.False(t, (&readlog.Metadata{}).HasAuthor())
	assert.False(t, (&readlog.Metadata{Author: ptr("")}).HasAuthor())
	assert.True(t, (&readlog.Metadata{Author: ptr("Ada")}).HasAuthor())
}
