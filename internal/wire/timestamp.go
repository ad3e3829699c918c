package wire

import "google.golang.org/protobuf/types/known/timestamppb"

// TimestampFromUnix converts outbound unix seconds into the google.protobuf.Timestamp the
// dex expects. Nanos are always zero and no range check is applied.
func TimestampFromUnix(seconds int64) *timestamppb.Timestamp {
	return &timestamppb.Timestamp{Seconds: seconds}
}
