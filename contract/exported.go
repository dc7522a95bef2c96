//go:build tinygo

package contract

// Entrypoint shims for the VSC wasm build. Each exported symbol binds
// a chain method name to its implementation with the host-backed SDK.

//go:wasmexport b_init
func Initialize(payload *string) *string {
	return initializeImpl(payload, RealSDK{})
}

//go:wasmexport b_new
func NewGame(payload *string) *string {
	return newGameImpl(payload, RealSDK{})
}

//go:wasmexport b_join
func JoinGame(payload *string) *string {
	return joinGameImpl(payload, RealSDK{})
}

//go:wasmexport b_commit
func CommitBoard(payload *string) *string {
	return commitBoardImpl(payload, RealSDK{})
}

//go:wasmexport b_shot
func TakeShot(payload *string) *string {
	return takeShotImpl(payload, RealSDK{})
}

//go:wasmexport b_report
func ReportResult(payload *string) *string {
	return reportResultImpl(payload, RealSDK{})
}

//go:wasmexport b_sonar
func UseSonar(payload *string) *string {
	return useSonarImpl(payload, RealSDK{})
}

//go:wasmexport b_sonar_report
func ReportSonar(payload *string) *string {
	return reportSonarImpl(payload, RealSDK{})
}

//go:wasmexport b_claim
func ClaimVictory(payload *string) *string {
	return claimVictoryImpl(payload, RealSDK{})
}

//go:wasmexport b_get
func GetGame(payload *string) *string {
	return getGameImpl(payload, RealSDK{})
}

//go:wasmexport b_sonar_check
func SonarAvailable(payload *string) *string {
	return sonarAvailableImpl(payload, RealSDK{})
}

//go:wasmexport b_count
func GameCount(payload *string) *string {
	return gameCountImpl(RealSDK{})
}
