package credential

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onionoriginals/originals/crypto"
	"github.com/onionoriginals/originals/did"
)

func TestCreateResourceCredential(t *testing.T) {
	vc, err := CreateResourceCredential(KindResourceCreated, map[string]string{"id": "r1"}, "did:peer:zabc")
	require.NoError(t, err)
	assert.Contains(t, vc.Type, "VerifiableCredential")
	assert.Contains(t, vc.Type, string(KindResourceCreated))
	assert.Equal(t, "did:peer:zabc", vc.Issuer)
	assert.NoError(t, ValidateCredential(vc))
}

func TestCreateResourceCredentialRejectsInvalidIssuer(t *testing.T) {
	_, err := CreateResourceCredential(KindResourceCreated, map[string]string{}, "not-a-did")
	assert.Error(t, err)
}

func TestValidateCredentialRejectsMissingSubject(t *testing.T) {
	vc, err := CreateResourceCredential(KindResourceCreated, map[string]string{"id": "r1"}, "did:peer:zabc")
	require.NoError(t, err)
	vc.CredentialSubject = nil
	assert.Error(t, ValidateCredential(vc))
}

type fixedVMResolver struct {
	vm did.VerificationMethod
}

func (r fixedVMResolver) ResolveVerificationMethod(ctx context.Context, id string) (did.VerificationMethod, error) {
	return r.vm, nil
}

func TestSignAndVerifyCredentialStructuredPath(t *testing.T) {
	kp, err := crypto.GenerateKeyPair(crypto.KeyTypeEd25519)
	require.NoError(t, err)

	vmID := "did:peer:zabc#key-0"
	resolver := fixedVMResolver{vm: did.VerificationMethod{
		ID:                 vmID,
		Type:               crypto.VerificationMethodType(crypto.KeyTypeEd25519),
		Controller:         "did:peer:zabc",
		PublicKeyMultibase: kp.PublicKeyMultibase,
	}}

	vc, err := CreateResourceCredential(KindResourceCreated, map[string]string{"id": "r1"}, "did:peer:zabc")
	require.NoError(t, err)

	signed, err := SignCredential(context.Background(), vc, kp.PrivateKeyMultibase, vmID, resolver, crypto.KeyTypeEd25519)
	require.NoError(t, err)
	require.NotNil(t, signed.Proof)
	assert.Equal(t, "eddsa-2022", signed.Proof.Cryptosuite)

	assert.True(t, VerifyCredential(context.Background(), signed, resolver))
}

func TestVerifyCredentialFailsOnTamper(t *testing.T) {
	kp, err := crypto.GenerateKeyPair(crypto.KeyTypeEd25519)
	require.NoError(t, err)

	vmID := "did:peer:zabc#key-0"
	resolver := fixedVMResolver{vm: did.VerificationMethod{
		ID:                 vmID,
		Type:               crypto.VerificationMethodType(crypto.KeyTypeEd25519),
		Controller:         "did:peer:zabc",
		PublicKeyMultibase: kp.PublicKeyMultibase,
	}}

	vc, err := CreateResourceCredential(KindResourceCreated, map[string]string{"id": "r1"}, "did:peer:zabc")
	require.NoError(t, err)

	signed, err := SignCredential(context.Background(), vc, kp.PrivateKeyMultibase, vmID, resolver, crypto.KeyTypeEd25519)
	require.NoError(t, err)

	signed.CredentialSubject = map[string]string{"id": "tampered"}
	assert.False(t, VerifyCredential(context.Background(), signed, resolver))
}

func TestVerifyCredentialFailsWithoutProof(t *testing.T) {
	vc, err := CreateResourceCredential(KindResourceCreated, map[string]string{"id": "r1"}, "did:peer:zabc")
	require.NoError(t, err)
	assert.False(t, VerifyCredential(context.Background(), vc, nil))
}

func TestSignCredentialUnstructuredFallback(t *testing.T) {
	kp, err := crypto.GenerateKeyPair(crypto.KeyTypeEd25519)
	require.NoError(t, err)

	vc, err := CreateResourceCredential(KindResourceCreated, map[string]string{"id": "r1"}, "did:peer:zabc")
	require.NoError(t, err)

	signed, err := SignCredential(context.Background(), vc, kp.PrivateKeyMultibase, "inline-key", nil, crypto.KeyTypeEd25519)
	require.NoError(t, err)
	require.NotNil(t, signed.Proof)
	assert.Empty(t, signed.Proof.Cryptosuite)
}
