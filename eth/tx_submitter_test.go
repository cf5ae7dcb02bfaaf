package eth

import (
	"context"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/orbitl2/operator/ethsender/core"
	"github.com/stretchr/testify/require"
)

func TestTxSubmitterStatusWithoutSubmission(t *testing.T) {
	t.Parallel()

	submitter := NewTxSubmitter("http://localhost:8545", nil, hclog.NewNullLogger())

	// no transaction was ever accepted for this payload, a fresh
	// submission is needed - resolved without touching the node
	status, err := submitter.GetTxStatus(context.Background(), &core.TxPayload{ID: 42})
	require.NoError(t, err)
	require.Equal(t, core.TxStatusDropped, status)
}
