package config

// ExampleConfigurationFile outputs compengine.conf file contents
const ExampleConfigurationFile = `##################################################
### Example compengine configuration file
##################################################

# Algorithm used when a request does not name one: huffman, lzss or dct.
# algorithm = "huffman"

## ---------- LZSS ------------
[lzss]
# How far back a match may start, 1-65535. Default is 4096.
# window_size = 4096

# Longest match, 1-255. Default is 18.
# lookahead = 18

# Shortest match worth a 3-byte match token. Default is 3.
# min_match = 3

## ---------- Logging ------------
[log]
# CRITICAL, ERROR, WARNING, NOTICE, INFO or DEBUG. Default is INFO.
# level = "INFO"
`
