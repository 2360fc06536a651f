// Package streak provides an embeddable daily streak tracker.
//
// A host program, such as an exercise runner, calls [Tracker.Update] once it
// has confirmed that the user made progress today, and [Tracker.Display] to
// print a one-line status. State lives in a single JSON file inside a home
// directory:
//
//	{
//	  "last_date": "2024-01-02",
//	  "streak": 6
//	}
//
// # Basic Usage
//
//	t, err := streak.NewDefault()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := t.Update(ctx); err != nil {
//	    log.Printf("streak: %v", err)
//	}
//	_, _ = t.Display(ctx, exercises, os.Stdout)
//
// # Corruption and Concurrency
//
// An unreadable streak file is never an error: Update replaces it with a
// fresh one-day streak and Display reports as if the streak started today.
// Only real I/O failures are returned.
//
// There is no locking. Two processes updating at the same time can lose one
// of the updates.
package streak
