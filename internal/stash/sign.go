package stash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"
)

type clock func() time.Time

func systemClock() clock {
	return func() time.Time {
		return time.Now().UTC()
	}
}

type authScope struct {
	date    string
	region  string
	service string
}

func newAuthScope(now time.Time, region, service string) authScope {
	return authScope{now.Format(DateFormat), region, service}
}

func (s authScope) text() string {
	return strings.Join([]string{
		s.date,
		s.region,
		s.service,
		"aws4_request",
	}, "/")
}

type authenticator struct {
	host    string
	service string
	region  string
	key     string
	secret  string
	time    clock
}

func newAuthenticator(host, region, key, secret string) authenticator {
	return authenticator{
		host:    host,
		service: "s3",
		region:  region,
		key:     key,
		secret:  secret,
		time:    systemClock(),
	}
}

// Sign computes the complete header set for a request. The required headers
// (Host, X-Amz-Date, and the content hash unless the payload is unsigned) are
// merged beneath the caller's headers, the merged set is canonicalized and
// signed, and the Authorization and Content-Type headers are attached last.
func (a authenticator) Sign(p Payload, method, path, query string, headers http.Header) http.Header {
	now := a.time()
	bodyHash := p.Hash()

	merged := make(http.Header, len(headers)+3)
	merged.Set("Host", a.host)
	merged.Set(header.date, now.Format(TimeFormat))
	if bodyHash != UnsignedPayload {
		merged.Set(header.contentHash, bodyHash)
	}

	for k, v := range headers {
		merged[http.CanonicalHeaderKey(k)] = append([]string(nil), v...)
	}

	merged.Set(header.authorization, a.authorize(now, method, path, query, merged, bodyHash))
	merged.Set(header.contentType, ContentType)
	return merged
}

func (a authenticator) authorize(now time.Time, method, path, query string, headers http.Header, bodyHash string) string {
	request := newCanonicalRequest(method, path, query, headers, bodyHash)
	scope := newAuthScope(now, a.region, a.service)

	var sb strings.Builder
	sb.WriteString(SignAlgorithm)
	sb.WriteRune(' ')
	sb.WriteString("Credential=")
	sb.WriteString(a.key)
	sb.WriteRune('/')
	sb.WriteString(scope.text())
	sb.WriteString(", ")
	sb.WriteString("SignedHeaders=")
	sb.WriteString(request.headers.signed)
	sb.WriteString(", ")
	sb.WriteString("Signature=")
	sb.WriteString(a.signature(now, scope, request))
	return sb.String()
}

func (a authenticator) signature(now time.Time, scope authScope, request canonicalRequest) string {
	text := strings.Join([]string{
		SignAlgorithm,
		now.Format(TimeFormat),
		scope.text(),
		request.hash(),
	}, "\n")
	return deriveSignature(a.secret, scope, text)
}

// deriveSignature runs the four stage HMAC chain over the credential scope and
// signs the given text with the derived key.
func deriveSignature(secret string, scope authScope, text string) string {
	key := []byte("AWS4" + secret)
	key = hash(key, scope.date)
	key = hash(key, scope.region)
	key = hash(key, scope.service)
	key = hash(key, "aws4_request")
	return hex.EncodeToString(hash(key, text))
}

func hash(key []byte, data string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(data))
	return mac.Sum(nil)
}
