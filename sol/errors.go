package sol

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"

	"github.com/meerkat-millionaires/kat-staking/common"
)

const (
	ErrorCodeInsufficientFunds uint32 = 309
	ErrorCodeSoldOut           uint32 = 311
	ErrorCodeNotLive           uint32 = 312

	simulationFailedPrefix = "Transaction simulation failed: "
)

var (
	ErrSignerMismatch      = errors.New("signer does not match the connected wallet")
	ErrCandyMachineUnknown = errors.New("candy machine state is unknown")

	customErrorPattern = regexp.MustCompile(`custom program error: 0x([0-9a-fA-F]+)`)

	programErrorMessages = map[uint32]string{
		ErrorCodeSoldOut:           "Sorry we've sold out!",
		ErrorCodeNotLive:           "Minting period hasn't started yet.",
		ErrorCodeInsufficientFunds: "Insufficient funds to mint. Please fund your wallet.",
	}
)

// ProgramError is a custom error returned by an on-chain program.
type ProgramError struct {
	Instruction int
	Code        uint32
}

func (e *ProgramError) Error() string {
	return fmt.Sprintf("instruction %d: custom program error: 0x%x", e.Instruction, e.Code)
}

// SimulationError is a transaction rejected during preflight simulation.
type SimulationError struct {
	Message string
	Logs    []string
	Program *ProgramError
}

func (e *SimulationError) Error() string {
	return e.Message
}

func (e *SimulationError) Unwrap() error {
	if e.Program == nil {
		return nil
	}
	return e.Program
}

// classifySendError turns an rpc error from sendTransaction into a
// SimulationError carrying the program error code when one is present.
func classifySendError(err error) error {
	var rpcErr *jsonrpc.RPCError
	if !errors.As(err, &rpcErr) {
		return err
	}

	sim := &SimulationError{Message: rpcErr.Message}
	if data, ok := rpcErr.Data.(map[string]interface{}); ok {
		sim.Logs = parseLogs(data["logs"])
		sim.Program = parseInstructionError(data["err"])
	}
	if sim.Program == nil {
		sim.Program = parseCustomErrorText(rpcErr.Message)
	}
	if sim.Program == nil {
		for _, line := range sim.Logs {
			if sim.Program = parseCustomErrorText(line); sim.Program != nil {
				break
			}
		}
	}
	return sim
}

func parseLogs(raw interface{}) []string {
	items, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	logs := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			logs = append(logs, s)
		}
	}
	return logs
}

// parseInstructionError reads {"InstructionError":[idx,{"Custom":code}]}.
func parseInstructionError(raw interface{}) *ProgramError {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	pair, ok := obj["InstructionError"].([]interface{})
	if !ok || len(pair) != 2 {
		return nil
	}
	index, ok := toInt64(pair[0])
	if !ok {
		return nil
	}
	detail, ok := pair[1].(map[string]interface{})
	if !ok {
		return nil
	}
	code, ok := toInt64(detail["Custom"])
	if !ok {
		return nil
	}
	return &ProgramError{Instruction: int(index), Code: uint32(code)}
}

func parseCustomErrorText(text string) *ProgramError {
	match := customErrorPattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	code, err := strconv.ParseUint(match[1], 16, 32)
	if err != nil {
		return nil
	}
	return &ProgramError{Instruction: -1, Code: uint32(code)}
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int64:
		return n, true
	case int:
		return int64(n), true
	case uint64:
		return int64(n), true
	}
	return 0, false
}

// ParseActionError renders err as a message for the wallet holder. Empty
// messages fall back to fallback.
func ParseActionError(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	if errors.Is(err, common.ErrSignatureDenied) {
		return "Signature request denied!"
	}
	if errors.Is(err, common.ErrUnknownSigner) || errors.Is(err, ErrSignerMismatch) {
		return "Please make sure to sign with the connected address."
	}

	var programErr *ProgramError
	if errors.As(err, &programErr) {
		if msg, ok := programErrorMessages[programErr.Code]; ok {
			return msg
		}
	}

	var simErr *SimulationError
	if errors.As(err, &simErr) {
		if idx := strings.Index(simErr.Message, "failed: "); idx >= 0 && strings.Contains(simErr.Message, simulationFailedPrefix) {
			if msg := simErr.Message[idx+len("failed: "):]; msg != "" {
				return msg
			}
		}
		if simErr.Message != "" {
			return simErr.Message
		}
		return fallback
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// TransactionLink returns the explorer url of a transaction.
func TransactionLink(explorerURL string, signature solana.Signature) string {
	return strings.TrimRight(explorerURL, "/") + "/tx/" + signature.String()
}
