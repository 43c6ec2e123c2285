//go:build windows

package pomocli

func pipePath() string {
	return `\\.\pipe\pomod`
}

func getConnectionPath() string {
	return pipePath()
}
