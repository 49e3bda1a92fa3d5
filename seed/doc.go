/*
Package seed bootstraps an empty store with synthetic municipal
datasets.

# Scaling

Randomized base values are multiplied by population/40000 so larger
municipalities show proportionally larger counts, then floored where
the target column is a count. The uniform ranges per indicator come
from plausible DATASUS/INEP/SSP magnitudes.

# Time Coverage

Health and security run monthly from January 2023; education annually
from 2020; demographics are five fixed annual snapshots 2020-2024. The
current year's monthly series is truncated at month 7, reproducing the
upstream reporting lag.

# Provenance

Guaraciaba do Norte receives a fixed list of real CNES facility rows
tagged REAL; everything generated is tagged SIMULADO.

# Idempotency

Run is gated solely by "municipality table has zero rows" and executes
inside a single transaction, so an interrupted bootstrap leaves the
store empty rather than partially populated. The guard itself is not
safe against concurrent bootstrap callers; the entry point runs it
exactly once before serving requests.

# Reproducibility

Every random draw goes through the injected *rand.Rand. Seeding it
with a fixed value yields an identical dataset, which the tests rely
on.
*/
package seed
