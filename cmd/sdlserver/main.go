/*
Sdlserver starts the sdlparse HTTP validation service and begins listening
for connections.

Usage:

	sdlserver [flags]

Once started, the server listens for HTTP requests and validates posted
schema/query text against the sdlparse grammar, returning a diagnostic list
per request. By default it listens on localhost:8080; this can be changed
with the --listen/-l flag or the SDLSERVER_LISTEN_ADDRESS environment
variable.

If a JWT token secret is not given, one is generated and seeded from a
random source. As a consequence, in this mode of operation all tokens
become invalid as soon as the server shuts down. This is suitable for
testing, but a real secret must be supplied in production via either the
--secret flag or the SDLSERVER_TOKEN_SECRET environment variable.

The flags are:

	-v, --version
		Print version info and exit.

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Must be in BIND_ADDRESS:PORT or :PORT
		format. Defaults to localhost:8080.

	-s, --secret TOKEN_SECRET
		Use the provided secret for signing JWT tokens. If not given, a
		random secret is generated at startup.

	--db FILE
		Path to the sqlite database file backing the parse cache and
		credential store. Defaults to "sdlserver.db".
*/
package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dekarrin/sdlparse/server"
)

const (
	EnvListen = "SDLSERVER_LISTEN_ADDRESS"
	EnvSecret = "SDLSERVER_TOKEN_SECRET"
)

const version = "1.0.0"

var (
	flagVersion = pflag.BoolP("version", "v", false, "Print version info and exit.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagSecret  = pflag.StringP("secret", "s", "", "Use the given secret for signing JWT tokens.")
	flagDB      = pflag.String("db", "sdlserver.db", "Path to the sqlite database backing the cache and credential store.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("sdlserver %s\n", version)
		return
	}

	listenAddr := os.Getenv(EnvListen)
	if pflag.Lookup("listen").Changed {
		listenAddr = *flagListen
	}
	if listenAddr == "" {
		listenAddr = "localhost:8080"
	}
	if !strings.Contains(listenAddr, ":") {
		fmt.Fprintf(os.Stderr, "Listen address is not in ADDRESS:PORT or :PORT format.\nDo -h for help.\n")
		os.Exit(1)
	}

	secretStr := os.Getenv(EnvSecret)
	if pflag.Lookup("secret").Changed {
		secretStr = *flagSecret
	}
	var secret []byte
	if secretStr != "" {
		secret = []byte(secretStr)
	} else {
		secret = make([]byte, 64)
		if _, err := rand.Read(secret); err != nil {
			fmt.Fprintf(os.Stderr, "Could not generate token secret: %s\n", err.Error())
			os.Exit(1)
		}
		log.Printf("WARN  Using generated token secret; all tokens issued will become invalid at shutdown")
	}

	srv, err := server.New(*flagDB, secret)
	if err != nil {
		log.Fatalf("FATAL could not start server: %s", err.Error())
	}
	defer srv.Close()

	log.Printf("INFO  Starting sdlserver %s on %s...", version, listenAddr)
	if err := http.ListenAndServe(listenAddr, srv); err != nil {
		log.Fatalf("FATAL server exited: %s", err.Error())
	}
}
