// Package io provides the byte stream boundaries of the Little Man
// Computer: the load image codec (little-endian 16-bit words), and the
// tape used for machine input and output.
package io
