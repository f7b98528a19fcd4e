package sol

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/stretchr/testify/assert"

	"github.com/meerkat-millionaires/kat-staking/common"
)

func simulationRPCError(message string, data interface{}) error {
	return &jsonrpc.RPCError{
		Code:    -32002,
		Message: message,
		Data:    data,
	}
}

func instructionErrorData(index int, code int) map[string]interface{} {
	return map[string]interface{}{
		"err": map[string]interface{}{
			"InstructionError": []interface{}{
				float64(index),
				map[string]interface{}{"Custom": float64(code)},
			},
		},
		"logs": []interface{}{"Program cndyAnrLdpjq1Ssp1z8xxDsB8dxe7u4HL5Nxi2K5WXZ invoke [1]"},
	}
}

func TestClassifySendError(t *testing.T) {
	t.Run("instruction error data", func(t *testing.T) {
		err := classifySendError(simulationRPCError(
			"Transaction simulation failed: Error processing Instruction 4: custom program error: 0x137",
			instructionErrorData(4, 311),
		))

		var sim *SimulationError
		assert.True(t, errors.As(err, &sim))
		assert.Len(t, sim.Logs, 1)

		var program *ProgramError
		assert.True(t, errors.As(err, &program))
		assert.Equal(t, 4, program.Instruction)
		assert.Equal(t, uint32(311), program.Code)
	})

	t.Run("code in message only", func(t *testing.T) {
		err := classifySendError(simulationRPCError(
			"Transaction simulation failed: Error processing Instruction 0: custom program error: 0x138",
			nil,
		))

		var program *ProgramError
		assert.True(t, errors.As(err, &program))
		assert.Equal(t, uint32(312), program.Code)
	})

	t.Run("code in logs", func(t *testing.T) {
		err := classifySendError(simulationRPCError(
			"Transaction simulation failed: Error processing Instruction 0",
			map[string]interface{}{
				"logs": []interface{}{"Program failed: custom program error: 0x135"},
			},
		))

		var program *ProgramError
		assert.True(t, errors.As(err, &program))
		assert.Equal(t, uint32(309), program.Code)
	})

	t.Run("not an rpc error", func(t *testing.T) {
		original := errors.New("connection refused")

		err := classifySendError(original)

		assert.Equal(t, original, err)
	})
}

func TestParseActionError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, "fallback"},
		{"signature denied", fmt.Errorf("sign: %w", common.ErrSignatureDenied), "Signature request denied!"},
		{"unknown signer", common.ErrUnknownSigner, "Please make sure to sign with the connected address."},
		{"signer mismatch", ErrSignerMismatch, "Please make sure to sign with the connected address."},
		{"sold out", classifySendError(simulationRPCError("Transaction simulation failed: Error processing Instruction 4: custom program error: 0x137", instructionErrorData(4, 311))), "Sorry we've sold out!"},
		{"not live", &ProgramError{Code: 312}, "Minting period hasn't started yet."},
		{"insufficient funds", &ProgramError{Code: 309}, "Insufficient funds to mint. Please fund your wallet."},
		{"unmapped simulation", classifySendError(simulationRPCError("Transaction simulation failed: Blockhash not found", nil)), "Blockhash not found"},
		{"unmapped program code", classifySendError(simulationRPCError("Transaction simulation failed: Error processing Instruction 0: custom program error: 0x1", nil)), "Error processing Instruction 0: custom program error: 0x1"},
		{"raw message", errors.New("rpc timeout"), "rpc timeout"},
		{"empty simulation", &SimulationError{}, "fallback"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseActionError(tc.err, "fallback"))
		})
	}
}

func TestTransactionLink(t *testing.T) {
	sig := solana.Signature{1, 2, 3}

	assert.Equal(t, "https://solscan.io/tx/"+sig.String(), TransactionLink("https://solscan.io", sig))
	assert.Equal(t, "https://solscan.io/tx/"+sig.String(), TransactionLink("https://solscan.io/", sig))
}
