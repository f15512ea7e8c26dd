// Package broker provides a named directory of streams.
//
// A Broker lazily creates one sink per topic id and keeps ownership of the
// write side: callers publish through the topic and observe through the
// topic's stream, so the only party able to emit on a topic is the topic
// itself. Topics of the same broker can be piped into each other, which
// makes the broker a convenient place to assemble a multicast graph by
// name.
package broker
