package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xtask/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestNewBuildDefinition_Args(t *testing.T) {
	def, err := domain.NewBuildDefinition("x86_64-pc-windows-msvc", "release")
	require.NoError(t, err)

	assert.Equal(t, "x86_64-pc-windows-msvc", def.Target())
	assert.Equal(t, domain.ProfileRelease, def.Profile())
	assert.Equal(t,
		[]string{"build", "--target", "x86_64-pc-windows-msvc", "--profile", "release"},
		def.Args(),
	)
	assert.False(t, def.IsZero())
}

func TestNewBuildDefinition_Options(t *testing.T) {
	def, err := domain.NewBuildDefinition("aarch64-apple-darwin", "dev",
		domain.WithPackage(" rtori-core-ffi "),
		domain.WithFeatures("simd", "", " wgpu"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"build", "--target", "aarch64-apple-darwin", "--profile", "dev",
		"--package", "rtori-core-ffi",
		"--features", "simd,wgpu",
	}, def.Args())

	features := def.Features()
	features[0] = "mutated"
	assert.Equal(t, []string{"simd", "wgpu"}, def.Features())
}

func TestNewBuildDefinition_Validation(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		profile string
		wantErr error
	}{
		{name: "empty target", target: "", profile: "release", wantErr: domain.ErrEmptyTarget},
		{name: "blank target", target: "  ", profile: "release", wantErr: domain.ErrEmptyTarget},
		{name: "empty profile", target: "wasm32-unknown-unknown", profile: "", wantErr: domain.ErrEmptyProfile},
		{name: "custom profile", target: "wasm32-unknown-unknown", profile: "release-lto"},
		{name: "unknown triple", target: "not-a-real-triple", profile: "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := domain.NewBuildDefinition(tt.target, tt.profile)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.True(t, def.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, def.Target())
			assert.Equal(t, tt.profile, def.Profile().String())
		})
	}
}

func TestNewBuildDefinition_ProfileErrorMetadata(t *testing.T) {
	_, err := domain.NewBuildDefinition("riscv64gc-unknown-linux-gnu", " ")
	require.Error(t, err)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "riscv64gc-unknown-linux-gnu", zErr.Metadata()["target"])
}

func TestBuildDefinition_ZeroValue(t *testing.T) {
	var def domain.BuildDefinition
	assert.True(t, def.IsZero())
}

func TestBuildDefinition_Fingerprint(t *testing.T) {
	a, err := domain.NewBuildDefinition("x86_64-unknown-linux-gnu", "release")
	require.NoError(t, err)
	b, err := domain.NewBuildDefinition("x86_64-unknown-linux-gnu", "release")
	require.NoError(t, err)
	c, err := domain.NewBuildDefinition("x86_64-unknown-linux-gnu", "dev")
	require.NoError(t, err)

	assert.Len(t, a.Fingerprint(), 16)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestProfile_IsKnown(t *testing.T) {
	assert.True(t, domain.ProfileRelease.IsKnown())
	assert.True(t, domain.ProfileDev.IsKnown())
	assert.False(t, domain.Profile("release-lto").IsKnown())
}

func TestBuildResult_Status(t *testing.T) {
	assert.True(t, (&domain.BuildResult{ExitCode: 0}).Success())
	assert.False(t, (&domain.BuildResult{ExitCode: 42}).Success())
	assert.False(t, (&domain.BuildResult{ExitCode: 42}).Signaled())
	assert.True(t, (&domain.BuildResult{ExitCode: -9}).Signaled())
}

func TestBuildResult_LenientDecoding(t *testing.T) {
	res := &domain.BuildResult{
		Stdout: []byte("ok\n"),
		Stderr: []byte{'a', 0xff, 'b', 0xc3},
	}

	assert.Equal(t, "ok\n", res.StdoutText())
	assert.Equal(t, "a�b�", res.StderrText())
	assert.Equal(t, "", domain.DecodeLenient(nil))
}

func TestConfig_Definition(t *testing.T) {
	cfg := domain.DefaultConfig()
	def, err := cfg.Definition()
	require.NoError(t, err)
	assert.Equal(t, "x86_64-pc-windows-msvc/release", def.String())
	assert.Equal(t, "cargo", cfg.Tool)

	cfg.Target = ""
	_, err = cfg.Definition()
	assert.ErrorIs(t, err, domain.ErrEmptyTarget)
}
