// Package engine implements the conversational turn pipeline: pre-processing,
// logic adapter polling, confidence arbitration and output dispatch.
//
// The Engine is the central coordination point of a bot. Each call to Ask
// runs one turn:
//
//  1. Every registered pre-processor runs in order and may enrich the session.
//  2. Every registered logic adapter is polled for eligibility and, when
//     eligible, asked to produce a candidate response with a confidence score.
//  3. The candidate with the highest confidence wins; on a tie the
//     last-registered adapter prevails.
//  4. The winning response is delivered to every registered output sink.
//
// Failures are isolated per component: a failing pre-processor, adapter or
// sink is logged and skipped, and the turn continues with the remaining
// components. Panics inside components are recovered and treated as errors.
package engine
