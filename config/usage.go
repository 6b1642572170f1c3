package config

var usageStrings = map[string]string{
	"config":           "The path to the configuration file",
	"algorithm":        "Default algorithm: huffman, lzss or dct",
	"lzss-window-size": "How far back an LZSS match may reach (1-65535)",
	"lzss-lookahead":   "Longest LZSS match (1-255)",
	"lzss-min-match":   "Shortest match worth an LZSS match token",
	"log-level":        "Log level: CRITICAL, ERROR, WARNING, NOTICE, INFO or DEBUG",
}
