// meta/meta.go
package meta

// RULES names the default rule set.
const RULES = "hex"

// SIZE is the default board side length.
const SIZE = 7

// IN_A_ROW is the row length for connect rules.
const IN_A_ROW = 3

// DEPTH is the default minimax search depth in plies.
const DEPTH = 3

// MAX_DEPTH caps the depth a move server request may ask for.
const MAX_DEPTH = 4

// MAX_BODY_BYTES caps the size of a move server request body.
const MAX_BODY_BYTES = 64 << 10

// EXPERIMENT names the default experiment.
const EXPERIMENT = "round_robin"

// GAMES is the number of games per matchup in experiments.
const GAMES = 20

// ADDR is the default listen address of the move server.
const ADDR = ":8080"
