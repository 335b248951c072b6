package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "onutec/pkg/platform/audit"
)

func TestNewRequiresBrokers(t *testing.T) {
	_, err := New(nil, "")
	assert.Error(t, err)
}

func TestTopic(t *testing.T) {
	// kgo.NewClient does not dial until the first request.
	p, err := New([]string{"127.0.0.1:9092"}, "")
	require.NoError(t, err)
	defer p.Close()

	assert.Equal(t, "onutec.audit.compliance", p.Topic(audit.CategoryCompliance))
	assert.Equal(t, "onutec.audit.security", p.Topic(audit.CategorySecurity))
}
