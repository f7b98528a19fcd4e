package common

import "encoding/asn1"

const (
	DefaultBIP39Passphrase = ""
	PublicKeyDisplayChars  = 5
)

var oidPublicKeyEd25519 = asn1.ObjectIdentifier{1, 3, 101, 112}
