package model

// TOTPSecretRequest asks for a new provisioned secret.
type TOTPSecretRequest struct {
	Issuer      string `json:"issuer"`
	AccountName string `json:"account_name"`
}

// TOTPCodeRequest asks for the current code of a secret.
type TOTPCodeRequest struct {
	Secret string `json:"secret"`
}

// TOTPCodeResponse carries a generated code.
type TOTPCodeResponse struct {
	Code string `json:"code"`
}

// TOTPVerifyRequest asks whether a code is valid for a secret.
type TOTPVerifyRequest struct {
	Secret string `json:"secret"`
	Code   string `json:"code"`
}

// TOTPVerifyResponse carries a verification verdict.
type TOTPVerifyResponse struct {
	Valid bool `json:"valid"`
}

// TOTPQRRequest asks for a QR rendering of a provisioning URI.
type TOTPQRRequest struct {
	Secret      string `json:"secret"`
	Issuer      string `json:"issuer"`
	AccountName string `json:"account_name"`
	URI         string `json:"uri"`
	Size        int    `json:"size"`
}

// TOTPQRResponse carries a base64-encoded PNG.
type TOTPQRResponse struct {
	ImageBase64 string `json:"image_base64"`
}

// TOTPBackupCodesRequest asks for recovery codes.
type TOTPBackupCodesRequest struct {
	Count int `json:"count"`
}

// TOTPBackupCodesResponse carries generated recovery codes.
type TOTPBackupCodesResponse struct {
	Codes []string `json:"codes"`
}
