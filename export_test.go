package twincount

var IncrementWith = (*SharedCounterArray).increment
