package contract

// Call routes a named entrypoint to its implementation. The wasm build
// reaches the impls through the exported shims instead; this dispatcher
// exists for the devnet host and the integration tests, which invoke
// the contract by method name the way the chain does.
func Call(chain SDKInterface, method string, payload *string) *string {
	switch method {
	case "b_init":
		return initializeImpl(payload, chain)
	case "b_new":
		return newGameImpl(payload, chain)
	case "b_join":
		return joinGameImpl(payload, chain)
	case "b_commit":
		return commitBoardImpl(payload, chain)
	case "b_shot":
		return takeShotImpl(payload, chain)
	case "b_report":
		return reportResultImpl(payload, chain)
	case "b_sonar":
		return useSonarImpl(payload, chain)
	case "b_sonar_report":
		return reportSonarImpl(payload, chain)
	case "b_claim":
		return claimVictoryImpl(payload, chain)
	case "b_get":
		return getGameImpl(payload, chain)
	case "b_sonar_check":
		return sonarAvailableImpl(payload, chain)
	case "b_count":
		return gameCountImpl(chain)
	default:
		chain.Abort("unknown method: " + method)
		return nil
	}
}
