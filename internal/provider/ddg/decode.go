package ddg

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"io"
	"mime"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
)

// DecodeBody turns a deep script response body into text.
//
// Brotli, gzip and deflate bodies are decompressed. When decompression fails, or the body
// carries no content-coding, it is decoded with the charset declared in contentType
// (UTF-8 when none is declared) and undecodable bytes are dropped.
func DecodeBody(body []byte, contentEncoding, contentType string) string {
	switch strings.ToLower(strings.TrimSpace(contentEncoding)) {
	case "br":
		out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
		if err == nil {
			return strings.ToValidUTF8(string(out), "")
		}
		log.Debug().Err(err).Msg("Brotli decode failed, falling back to plain text")
	case "gzip":
		out, err := gunzip(body)
		if err == nil {
			return strings.ToValidUTF8(string(out), "")
		}
		log.Debug().Err(err).Msg("Gzip decode failed, falling back to plain text")
	case "deflate":
		out, err := inflate(body)
		if err == nil {
			return strings.ToValidUTF8(string(out), "")
		}
		log.Debug().Err(err).Msg("Deflate decode failed, falling back to plain text")
	}

	return decodeText(body, contentType)
}

func gunzip(body []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func inflate(body []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// decodeText decodes body using the declared charset, ignoring undecodable bytes
func decodeText(body []byte, contentType string) string {
	enc := declaredEncoding(contentType)
	if enc == nil {
		return strings.ToValidUTF8(string(body), "")
	}

	out, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return strings.ToValidUTF8(string(body), "")
	}
	return strings.ReplaceAll(strings.ToValidUTF8(string(out), ""), "\uFFFD", "")
}

// declaredEncoding returns the encoding named by the charset parameter of contentType,
// or nil when the type declares none (or declares UTF-8)
func declaredEncoding(contentType string) encoding.Encoding {
	if contentType == "" {
		return nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil
	}
	cs := params["charset"]
	if cs == "" {
		return nil
	}

	enc, name := charset.Lookup(cs)
	if enc == nil || name == "utf-8" {
		return nil
	}
	return enc
}
