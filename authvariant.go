package pgwire

import "github.com/coldlake/pgwire/internal/proto"

// AuthVariant classifies an AuthenticationMessage's payload. It never
// performs the corresponding authentication cryptography (MD5 hashing,
// SCRAM/SASL exchange, GSSAPI/Kerberos ticket handling); it only reports
// which challenge the server presented, and the data the challenge itself
// carries (a salt, or opaque continuation data).
type AuthVariant struct {
	Kind AuthKind
	// Salt holds the 4-byte MD5 salt when Kind == AuthMD5. Nil otherwise.
	Salt []byte
	// Data holds the remaining body bytes when Kind == AuthGSSContinue.
	// Nil otherwise.
	Data []byte
	// Code is the raw authentication request code. It is always set, and
	// is the only field populated when Kind == AuthUnknown.
	Code int32
}

// AuthKind names the authentication challenge an AuthenticationMessage
// carries.
type AuthKind int

const (
	AuthOk AuthKind = iota
	AuthKerberosV5
	AuthCleartextPassword
	AuthMD5
	AuthScmCredential
	AuthGSS
	AuthGSSContinue
	AuthSspi
	AuthUnknown
)

func (k AuthKind) String() string {
	switch k {
	case AuthOk:
		return "ok"
	case AuthKerberosV5:
		return "kerberos-v5"
	case AuthCleartextPassword:
		return "cleartext-password"
	case AuthMD5:
		return "md5-password"
	case AuthScmCredential:
		return "scm-credential"
	case AuthGSS:
		return "gss"
	case AuthGSSContinue:
		return "gss-continue"
	case AuthSspi:
		return "sspi"
	default:
		return "unknown"
	}
}

func decodeAuthVariant(r *Reader) AuthVariant {
	code := r.Int32()
	switch proto.AuthCode(code) {
	case proto.AuthReqOk:
		return AuthVariant{Kind: AuthOk, Code: code}
	case proto.AuthReqKrb5:
		return AuthVariant{Kind: AuthKerberosV5, Code: code}
	case proto.AuthReqPassword:
		return AuthVariant{Kind: AuthCleartextPassword, Code: code}
	case proto.AuthReqMD5:
		return AuthVariant{Kind: AuthMD5, Code: code, Salt: r.Take(4)}
	case proto.AuthReqSCM:
		return AuthVariant{Kind: AuthScmCredential, Code: code}
	case proto.AuthReqGSS:
		return AuthVariant{Kind: AuthGSS, Code: code}
	case proto.AuthReqGSSCont:
		return AuthVariant{Kind: AuthGSSContinue, Code: code, Data: r.Rest()}
	case proto.AuthReqSSPI:
		return AuthVariant{Kind: AuthSspi, Code: code}
	default:
		if code < 0 {
			errorf("negative authentication code %d", code)
		}
		return AuthVariant{Kind: AuthUnknown, Code: code}
	}
}
