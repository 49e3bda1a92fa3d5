/*
Package assistant answers operator questions over the municipal
aggregates, with two response sources.

# Remote and Local Paths

When an OpenAI key is configured the assistant tries the hosted model
first, bounded by the configured timeout. Any remote failure - network,
auth, quota, malformed payload, timeout - falls back to the local
responder inside the same call; the caller always gets an answer, and
the Reply carries a Source tag saying which path produced it.

Without a key the assistant runs local-only.

# Context Assembly

BuildContext reads the municipality's aggregate counters (facilities,
schools, security units, total admissions, total crimes) through the
store's query layer and renders them into the fixed summary block that
both paths consume.

# Local Routing

The local responder is a pure function over the lowercased question,
the optional document, and the context. It walks a fixed, ordered
route table - health, education, security, demographics, document
fallback, generic - and the first matching bucket wins, which makes
the order-sensitivity explicit and testable.

# Persistence

Every completed exchange is appended to chat_conversas. A failed
append is logged as a warning and never blocks the answer.
*/
package assistant
