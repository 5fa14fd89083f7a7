package graph

import "fmt"

// Stats summarizes a loaded registry for the doctor command.
type Stats struct {
	People     int
	Chats      int
	GroupChats int
	Messages   int
	Reactions  int
}

func (s Stats) String() string {
	return fmt.Sprintf("people=%d chats=%d group_chats=%d messages=%d reactions=%d",
		s.People, s.Chats, s.GroupChats, s.Messages, s.Reactions)
}

func (r *Registry) Stats() Stats {
	stats := Stats{
		People:     len(r.People),
		Chats:      len(r.Chats),
		GroupChats: len(r.GroupChats),
	}
	for _, list := range [][]*Chat{r.Chats, r.GroupChats} {
		for _, chat := range list {
			stats.Messages += len(chat.Messages)
			for _, msg := range chat.Messages {
				stats.Reactions += len(msg.Reactions)
			}
		}
	}
	return stats
}
