// Package models contains the request and response types of the HTTP API.
package models

// EncryptRequest carries plaintext and cipher parameters. The key and IV
// accept 32 hex chars or 16 UTF-8 chars; the IV is only meaningful for CFB
// and is generated when omitted.
type EncryptRequest struct {
	Text string `json:"text" binding:"required"`
	Key  string `json:"key" binding:"required"`
	Mode string `json:"mode" binding:"required,oneof=ecb cfb"`
	IV   string `json:"iv,omitempty"`
}

// EncryptResponse returns the ciphertext as hex. For CFB the IV is reported
// separately; callers must keep it to decrypt.
type EncryptResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	CipherHex string `json:"cipher_hex,omitempty"`
	IVHex     string `json:"iv_hex,omitempty"`
}

// DecryptRequest carries hex ciphertext and the parameters used to encrypt.
type DecryptRequest struct {
	CipherHex string `json:"cipher_hex" binding:"required"`
	Key       string `json:"key" binding:"required"`
	Mode      string `json:"mode" binding:"required,oneof=ecb cfb"`
	IVHex     string `json:"iv_hex,omitempty"`
}

// DecryptResponse returns the recovered plaintext.
type DecryptResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Text    string `json:"text,omitempty"`
}
