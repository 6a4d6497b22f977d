package app

// Version, Commit and BuildTime are stamped by the linker, e.g.
//
//	go build -ldflags "-X github.com/heartmarshall/catgateway/internal/app.Version=1.4.0 \
//	  -X github.com/heartmarshall/catgateway/internal/app.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

const shortCommitLen = 7

// BuildVersion is the version reported by --version, the startup log and
// /health: the release, the short commit when stamped and the build time
// when stamped.
func BuildVersion() string {
	v := Version
	if stamped(Commit) {
		c := Commit
		if len(c) > shortCommitLen {
			c = c[:shortCommitLen]
		}
		v += "+" + c
	}
	if stamped(BuildTime) {
		v += " (built " + BuildTime + ")"
	}
	return v
}

// UserAgent identifies the gateway on calls to the identity service.
func UserAgent() string {
	return serviceName + "/" + Version
}

func stamped(s string) bool {
	return s != "" && s != "unknown"
}
