package util

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"github.com/meerkat-millionaires/kat-staking/models"
)

const (
	DiscriminatorLength = 8
	VaultNameLength     = 32

	// MetadataKeyV1 is the account key of a Metaplex MetadataV1 account.
	MetadataKeyV1 uint8 = 4

	// DepositRecordVaultOffset is the byte offset of the vault key in a gem
	// deposit receipt.
	DepositRecordVaultOffset = DiscriminatorLength
)

var (
	ErrInvalidDiscriminator = errors.New("invalid account discriminator")
	ErrInvalidMetadataKey   = errors.New("invalid metadata account key")

	CandyMachineDiscriminator  = AnchorAccountDiscriminator("CandyMachine")
	VaultDiscriminator         = AnchorAccountDiscriminator("Vault")
	DepositRecordDiscriminator = AnchorAccountDiscriminator("GemDepositReceipt")
)

// borshReader wraps a borsh decoder and keeps the first error so callers can
// read a whole layout before checking.
type borshReader struct {
	dec *bin.Decoder
	err error
}

func newBorshReader(data []byte) *borshReader {
	return &borshReader{dec: bin.NewBorshDecoder(data)}
}

func (r *borshReader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	out, err := r.dec.ReadNBytes(n)
	r.err = err
	return out
}

func (r *borshReader) publicKey() solana.PublicKey {
	b := r.bytes(solana.PublicKeyLength)
	if r.err != nil {
		return solana.PublicKey{}
	}
	return solana.PublicKeyFromBytes(b)
}

func (r *borshReader) u8() uint8 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadUint8()
	r.err = err
	return v
}

func (r *borshReader) u16() uint16 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadUint16(bin.LE)
	r.err = err
	return v
}

func (r *borshReader) u32() uint32 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadUint32(bin.LE)
	r.err = err
	return v
}

func (r *borshReader) u64() uint64 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadUint64(bin.LE)
	r.err = err
	return v
}

func (r *borshReader) i64() int64 {
	if r.err != nil {
		return 0
	}
	v, err := r.dec.ReadInt64(bin.LE)
	r.err = err
	return v
}

func (r *borshReader) boolean() bool {
	return r.u8() != 0
}

func (r *borshReader) option() bool {
	return r.u8() == 1
}

func (r *borshReader) string() string {
	n := r.u32()
	if r.err != nil {
		return ""
	}
	if int(n) > r.dec.Remaining() {
		r.err = fmt.Errorf("string length %d exceeds remaining %d bytes", n, r.dec.Remaining())
		return ""
	}
	return string(r.bytes(int(n)))
}

func (r *borshReader) discriminator(expected [8]byte) {
	b := r.bytes(DiscriminatorLength)
	if r.err == nil && !bytes.Equal(b, expected[:]) {
		r.err = ErrInvalidDiscriminator
	}
}

// DecodeCandyMachine decodes a candy machine v1 account.
func DecodeCandyMachine(address solana.PublicKey, data []byte) (*models.CandyMachineState, error) {
	r := newBorshReader(data)
	r.discriminator(CandyMachineDiscriminator)

	state := &models.CandyMachineState{Address: address}
	state.Authority = r.publicKey()
	state.Wallet = r.publicKey()
	if r.option() {
		mint := r.publicKey()
		state.TokenMint = &mint
	}
	state.Config = r.publicKey()
	state.UUID = r.string()
	state.Price = r.u64()
	state.ItemsAvailable = r.u64()
	if r.option() {
		date := r.i64()
		state.GoLiveDate = &date
	}
	state.ItemsRedeemed = r.u64()
	state.Bump = r.u8()

	if r.err != nil {
		return nil, fmt.Errorf("decode candy machine %s: %w", address, r.err)
	}
	return state, nil
}

// DecodeMetadata decodes a Metaplex metadata account into an NFT. Padding
// bytes are trimmed from the name, symbol and uri.
func DecodeMetadata(address solana.PublicKey, data []byte) (*models.NFT, error) {
	r := newBorshReader(data)
	if key := r.u8(); r.err == nil && key != MetadataKeyV1 {
		return nil, fmt.Errorf("decode metadata %s: %w", address, ErrInvalidMetadataKey)
	}

	nft := &models.NFT{Metadata: address}
	nft.UpdateAuthority = r.publicKey()
	nft.Mint = r.publicKey()
	nft.Name = trimPadding(r.string())
	nft.Symbol = trimPadding(r.string())
	nft.URI = trimPadding(r.string())
	nft.SellerFeeBps = r.u16()
	if r.option() {
		count := r.u32()
		for i := uint32(0); i < count && r.err == nil; i++ {
			nft.Creators = append(nft.Creators, models.Creator{
				Address:  r.publicKey(),
				Verified: r.boolean(),
				Share:    r.u8(),
			})
		}
	}
	// primary_sale_happened and is_mutable follow but are not used.

	if r.err != nil {
		return nil, fmt.Errorf("decode metadata %s: %w", address, r.err)
	}
	return nft, nil
}

func DecodeVault(address solana.PublicKey, data []byte) (*models.Vault, error) {
	r := newBorshReader(data)
	r.discriminator(VaultDiscriminator)

	vault := &models.Vault{}
	vault.Bank = r.publicKey()
	vault.Owner = r.publicKey()
	vault.Creator = r.publicKey()
	vault.Authority = r.publicKey()
	vault.AuthoritySeed = r.publicKey()
	vault.AuthorityBump = r.u8()
	vault.Locked = r.boolean()
	vault.Name = trimPadding(string(r.bytes(VaultNameLength)))
	vault.GemBoxCount = r.u64()
	vault.GemCount = r.u64()

	if r.err != nil {
		return nil, fmt.Errorf("decode vault %s: %w", address, r.err)
	}
	return vault, nil
}

func DecodeDepositRecord(address solana.PublicKey, data []byte) (*models.DepositRecord, error) {
	r := newBorshReader(data)
	r.discriminator(DepositRecordDiscriminator)

	record := &models.DepositRecord{Address: address}
	record.Vault = r.publicKey()
	record.GemBox = r.publicKey()
	record.GemMint = r.publicKey()
	record.GemCount = r.u64()

	if r.err != nil {
		return nil, fmt.Errorf("decode deposit record %s: %w", address, r.err)
	}
	return record, nil
}

// VaultNameBytes pads or truncates a vault name to the on-chain width.
func VaultNameBytes(name string) [VaultNameLength]byte {
	var out [VaultNameLength]byte
	copy(out[:], name)
	return out
}

func trimPadding(s string) string {
	return strings.TrimRight(s, "\x00")
}
